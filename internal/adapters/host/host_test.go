package host_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/host"
	"go.trai.ch/ucb/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		file     string
		want     domain.Distro
		buildDep bool
	}{
		{
			file:     "debian-os-release",
			want:     domain.Distro{ID: "debian", Version: "12", Codename: "bookworm"},
			buildDep: true,
		},
		{
			file: "fedora-os-release",
			want: domain.Distro{ID: "fedora", IDLike: []string{"rhel", "centos"}, Version: "40"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			d := host.NewDistroDetector(filepath.Join(t.TempDir(), "missing"), filepath.Join("testdata", tt.file))

			got, err := d.Detect()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.buildDep, got.SupportsBuildDeps())
		})
	}
}

func TestDetect_NotFound(t *testing.T) {
	_, err := host.NewDistroDetector(filepath.Join(t.TempDir(), "os-release")).Detect()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHostProbeFailed)
}

func TestParseOSRelease_Quoting(t *testing.T) {
	got, err := host.ParseOSRelease(strings.NewReader("ID='ubuntu'\nVERSION_ID=\"24.04\"\nbroken line\n"))
	require.NoError(t, err)
	assert.Equal(t, "ubuntu", got.ID)
	assert.Equal(t, "24.04", got.Version)
}

func TestDiskProbe_Free(t *testing.T) {
	free, err := host.DiskProbe{}.Free(t.TempDir())
	require.NoError(t, err)
	assert.Positive(t, free)
}

func TestDiskProbe_Missing(t *testing.T) {
	_, err := host.DiskProbe{}.Free(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", host.FormatBytes(512))
	assert.Equal(t, "1.5 KiB", host.FormatBytes(1536))
	assert.Equal(t, "100.0 GiB", host.FormatBytes(100<<30))
}
