package host

import (
	"fmt"

	"go.trai.ch/ucb/internal/core/ports"
)

var _ ports.DiskProbe = DiskProbe{}

// DiskProbe reports free disk space.
type DiskProbe struct{}

// FormatBytes renders n with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
