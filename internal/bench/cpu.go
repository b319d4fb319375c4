// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUInfo records the host features relevant to floating-point kernels.
// Kernels here are portable Go; the features only qualify the timings.
type CPUInfo struct {
	Arch     string
	NumCPU   int
	Features []string
}

// DetectCPU inspects the running host.
func DetectCPU() CPUInfo {
	info := CPUInfo{Arch: runtime.GOARCH, NumCPU: runtime.NumCPU()}

	switch runtime.GOARCH {
	case "amd64", "386":
		add := func(ok bool, name string) {
			if ok {
				info.Features = append(info.Features, name)
			}
		}
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		if cpu.ARM64.HasASIMD {
			info.Features = append(info.Features, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			info.Features = append(info.Features, "fphp")
		}
		if cpu.ARM64.HasSVE {
			info.Features = append(info.Features, "sve")
		}
	}

	return info
}

// String renders "amd64, 8 CPUs, avx2 fma".
func (c CPUInfo) String() string {
	var b strings.Builder
	b.WriteString(c.Arch)
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(c.NumCPU))
	b.WriteString(" CPUs")
	if len(c.Features) > 0 {
		b.WriteString(", ")
		b.WriteString(strings.Join(c.Features, " "))
	}

	return b.String()
}
