package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
)

// ForcedFlags are applied over the flag files for every build.
func ForcedFlags(cfg domain.BuildConfig, profile domain.PlatformProfile) domain.FlagSet {
	fs := domain.NewFlagSet(
		domain.Flag{Key: "is_component_build", Value: "false"},
		domain.Flag{Key: "is_unsafe_developer_build", Value: "false"},
		domain.Flag{Key: "proprietary_codecs", Value: "true"},
		domain.Flag{Key: "ffmpeg_branding", Value: domain.Quote("Chrome")},
		domain.Flag{Key: "use_gnome_keyring", Value: "false"},
		domain.Flag{Key: "exclude_unwind_tables", Value: "false"},
		domain.Flag{Key: "target_os", Value: domain.Quote(string(cfg.OS))},
		domain.Flag{Key: "target_cpu", Value: domain.Quote(string(cfg.CPU))},
	)
	for _, f := range profile.ExtraFlags {
		fs.Set(f.Key, f.Value)
	}
	return fs
}

// ModeFlags is the debug or release flag bundle.
func ModeFlags(debug bool) domain.FlagSet {
	if debug {
		return domain.NewFlagSet(
			domain.Flag{Key: "is_debug", Value: "true"},
			domain.Flag{Key: "is_unsafe_developer_build", Value: "true"},
			domain.Flag{Key: "is_official_build", Value: "false"},
			domain.Flag{Key: "symbol_level", Value: "1"},
			domain.Flag{Key: "blink_symbol_level", Value: "1"},
		)
	}
	return domain.NewFlagSet(
		domain.Flag{Key: "is_debug", Value: "false"},
		domain.Flag{Key: "is_unsafe_developer_build", Value: "false"},
		domain.Flag{Key: "is_official_build", Value: "true"},
		domain.Flag{Key: "symbol_level", Value: "0"},
		domain.Flag{Key: "blink_symbol_level", Value: "0"},
	)
}

// WrapperFlags sets cc_wrapper when a compiler wrapper is configured.
func WrapperFlags(cfg domain.BuildConfig) domain.FlagSet {
	if cfg.CCWrapper == "" {
		return domain.NewFlagSet()
	}
	return domain.NewFlagSet(domain.Flag{Key: "cc_wrapper", Value: domain.Quote(cfg.CCWrapper)})
}

// ResolveFlags reads the flag files of profile under the workspace root and
// layers forced, mode, wrapper and CLI flags over them.
func ResolveFlags(cfg domain.BuildConfig, profile domain.PlatformProfile) (domain.FlagSet, error) {
	files := append([]string{profile.FlagsFile()}, profile.ExtraFlagFiles...)

	layers := make([]domain.FlagSet, 0, len(files)+4)
	for _, f := range files {
		fs, err := readFlagFile(filepath.Join(cfg.Root, f))
		if err != nil {
			return domain.FlagSet{}, err
		}
		layers = append(layers, fs)
	}

	layers = append(layers,
		ForcedFlags(cfg, profile),
		ModeFlags(cfg.Debug),
		WrapperFlags(cfg),
		cfg.GNOverrides(),
	)
	return domain.Layer(layers...), nil
}

func readFlagFile(path string) (domain.FlagSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace layout
	if err != nil {
		return domain.FlagSet{}, zerr.With(zerr.Wrap(domain.ErrFlagsFileReadFailed, err.Error()), "path", path)
	}
	return domain.ParseFlagLines(strings.Split(string(data), "\n")), nil
}
