package domain

import "strings"

const gclientTemplate = `solutions = [
  {
    "managed": False,
    "name": "src",
    "url": "@@URL@@",
    "custom_deps": {
      "src/third_party/WebKit/LayoutTests": None,
      "src/chrome_frame/tools/test/reference_build/chrome": None,
      "src/chrome_frame/tools/test/reference_build/chrome_win": None,
      "src/chrome/tools/test/reference_build/chrome": None,
      "src/chrome/tools/test/reference_build/chrome_linux": None,
      "src/chrome/tools/test/reference_build/chrome_mac": None,
      "src/chrome/tools/test/reference_build/chrome_win": None
    },
    "custom_vars": {
      "checkout_pgo_profiles": False
    }
  },
]
target_os = [ @@TARGET_OS@@ ]
`

// RenderGClient renders the .gclient solution file for the target OS.
func RenderGClient(os TargetOS, url string) string {
	if url == "" {
		url = DefaultChromiumOrigin
	}
	r := strings.NewReplacer(
		"@@URL@@", url,
		"@@TARGET_OS@@", "'"+string(os)+"'",
	)
	return r.Replace(gclientTemplate)
}
