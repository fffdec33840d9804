// SPDX-License-Identifier: MIT

// Package hostinfo probes the CPU for the numbers that matter to a tiled
// transpose: data cache sizes, cache line size and SIMD capabilities.
package hostinfo

import (
	"math/bits"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// FallbackBlockSize is used when the L1 data cache size is unknown.
const FallbackBlockSize = 32

// maxBlockSize caps suggestions on hosts reporting very large L1 caches.
const maxBlockSize = 256

// IntSize is the size of one matrix element in bytes.
const IntSize = bits.UintSize / 8

// Info is a snapshot of the host CPU. Cache sizes are in bytes, -1 when unknown.
type Info struct {
	Brand        string
	Arch         string
	LogicalCores int
	CacheLine    int
	L1D          int
	L2           int
	L3           int
	Features     []string
}

// Detect reads cpuid for cache geometry and x/sys/cpu for SIMD flags.
func Detect() Info {
	return Info{
		Brand:        cpuid.CPU.BrandName,
		Arch:         runtime.GOARCH,
		LogicalCores: cpuid.CPU.LogicalCores,
		CacheLine:    cpuid.CPU.CacheLine,
		L1D:          cpuid.CPU.Cache.L1D,
		L2:           cpuid.CPU.Cache.L2,
		L3:           cpuid.CPU.Cache.L3,
		Features:     simdFeatures(),
	}
}

// simdFeatures lists the vector extensions present, in a fixed order.
func simdFeatures() []string {
	var out []string
	if cpu.X86.HasSSE2 {
		out = append(out, "sse2")
	}
	if cpu.X86.HasAVX2 {
		out = append(out, "avx2")
	}
	if cpu.X86.HasAVX512F {
		out = append(out, "avx512f")
	}
	if cpu.ARM64.HasASIMD {
		out = append(out, "neon")
	}
	if cpu.ARM64.HasSVE {
		out = append(out, "sve")
	}

	return out
}

// SuggestBlockSize returns the largest power-of-two tile edge b such that one
// source tile and one destination tile (2·b²·elemSize bytes) fit in l1d.
// Returns FallbackBlockSize when l1d or elemSize is not positive.
func SuggestBlockSize(l1d, elemSize int) int {
	if l1d <= 0 || elemSize <= 0 {
		return FallbackBlockSize
	}
	b := 1
	for next := b * 2; next <= maxBlockSize && 2*next*next*elemSize <= l1d; next = b * 2 {
		b = next
	}

	return b
}

// DefaultBlockSize is SuggestBlockSize for this host's L1D and int elements.
func DefaultBlockSize() int {
	return SuggestBlockSize(cpuid.CPU.Cache.L1D, IntSize)
}
