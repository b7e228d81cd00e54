package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// TargetOS is the operating system a build is produced for.
type TargetOS string

const (
	// OSLinux targets desktop Linux.
	OSLinux TargetOS = "linux"
	// OSAndroid targets Android.
	OSAndroid TargetOS = "android"
	// OSWindows targets Windows.
	OSWindows TargetOS = "win"
)

// TargetOSes lists every supported target OS in flag order.
var TargetOSes = []TargetOS{OSLinux, OSAndroid, OSWindows}

// TargetCPU is the CPU architecture a build is produced for, in GN naming.
type TargetCPU string

const (
	// CPUArm is 32-bit ARM.
	CPUArm TargetCPU = "arm"
	// CPUArm64 is 64-bit ARM.
	CPUArm64 TargetCPU = "arm64"
	// CPUX86 is 32-bit x86.
	CPUX86 TargetCPU = "x86"
	// CPUX64 is x86-64.
	CPUX64 TargetCPU = "x64"
)

// TargetCPUs lists every supported target CPU in flag order.
var TargetCPUs = []TargetCPU{CPUArm, CPUArm64, CPUX86, CPUX64}

func (o TargetOS) String() string { return string(o) }

func (c TargetCPU) String() string { return string(c) }

// ParseTargetOS validates a raw OS value.
func ParseTargetOS(s string) (TargetOS, error) {
	for _, o := range TargetOSes {
		if string(o) == s {
			return o, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidConfiguration, "unknown target OS"), "os", s)
}

// ParseTargetCPU validates a raw CPU value.
func ParseTargetCPU(s string) (TargetCPU, error) {
	for _, c := range TargetCPUs {
		if string(c) == s {
			return c, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidConfiguration, "unknown target CPU"), "arch", s)
}

// HostCPU maps the running GOARCH to its GN cpu name.
func HostCPU() TargetCPU {
	return cpuForGOARCH(runtime.GOARCH)
}

func cpuForGOARCH(goarch string) TargetCPU {
	switch goarch {
	case "amd64":
		return CPUX64
	case "arm64":
		return CPUArm64
	case "386":
		return CPUX86
	case "arm":
		return CPUArm
	default:
		return TargetCPU(goarch)
	}
}

// JoinOSes renders the supported OS values for help text.
func JoinOSes() string {
	parts := make([]string, len(TargetOSes))
	for i, o := range TargetOSes {
		parts[i] = string(o)
	}
	return strings.Join(parts, "|")
}

// JoinCPUs renders the supported CPU values for help text.
func JoinCPUs() string {
	parts := make([]string, len(TargetCPUs))
	for i, c := range TargetCPUs {
		parts[i] = string(c)
	}
	return strings.Join(parts, "|")
}
