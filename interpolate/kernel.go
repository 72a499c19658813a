package interpolate

import (
	"errors"
	"fmt"
	"strings"
)

// Kernel selects one interpolation kernel. Each kernel has a batch width
// fixed by its register layout; it is chosen once, when a Runner is built.
type Kernel int

const (
	Plain Kernel = iota
	PlainX4
	SSE4
	AVX2
	AVX2X4
	AVX512
	AVX512X8
)

// batchFunc interpolates one batch of adjacent output pixels. coords holds
// exactly one batch and dst starts at the batch's first output pixel.
type batchFunc func(src Image, coords []Coord, dst []byte, canOverwrite bool)

type kernelInfo struct {
	name      string
	bits      int
	batch     int
	tolerance int
	fn        batchFunc
	// generic is the portable version of fn, kept once fn is replaced by
	// an assembly kernel.
	generic batchFunc
	native  bool
}

var kernels = [...]kernelInfo{
	Plain:    {name: "No SIMD", bits: 0, batch: 1, tolerance: 0, fn: plainInterpolate},
	PlainX4:  {name: "No SIMD x4", bits: 0, batch: plainX4Batch, tolerance: 0, fn: plainX4Interpolate},
	SSE4:     {name: "SSE4", bits: 128, batch: sse4Batch, tolerance: 1, fn: sse4Interpolate},
	AVX2:     {name: "AVX2", bits: 256, batch: avx2Batch, tolerance: 3, fn: avx2Interpolate},
	AVX2X4:   {name: "AVX2 x4", bits: 256, batch: avx2X4Batch, tolerance: 3, fn: avx2X4Interpolate},
	AVX512:   {name: "AVX512", bits: 512, batch: avx512Batch, tolerance: 3, fn: avx512Interpolate},
	AVX512X8: {name: "AVX512 x8", bits: 512, batch: avx512X8Batch, tolerance: 3, fn: avx512X8Interpolate},
}

func init() {
	for k := range kernels {
		kernels[k].generic = kernels[k].fn
	}
	if noSimd() {
		return
	}
	for k, fn := range asmKernels() {
		kernels[k].fn = fn
		kernels[k].native = true
	}
}

// Kernels returns every kernel, narrowest first.
func Kernels() []Kernel {
	ks := make([]Kernel, len(kernels))
	for i := range ks {
		ks[i] = Kernel(i)
	}
	return ks
}

func (k Kernel) valid() bool {
	return k >= 0 && int(k) < len(kernels)
}

func (k Kernel) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
	return kernels[k].name
}

// Bits is the register width the kernel is written for, 0 for scalar.
func (k Kernel) Bits() int {
	return kernels[k].bits
}

// BatchWidth is the number of adjacent output pixels per kernel call. The
// output width must be a multiple of it.
func (k Kernel) BatchWidth() int {
	return kernels[k].batch
}

// Tolerance is the largest per-channel difference from Plain accepted when
// validating the kernel. It grows with the register width.
func (k Kernel) Tolerance() int {
	return kernels[k].tolerance
}

// Native reports whether the kernel runs as vector instructions on this
// CPU. Scalar kernels are always native. A SIMD kernel that is not native
// still runs, on the portable lane model, and produces the same pixels.
func (k Kernel) Native() bool {
	return kernels[k].bits == 0 || kernels[k].native
}

// ParseKernel accepts a kernel's name, case-insensitive, with or without
// spaces: "avx2 x4", "AVX2X4" and "avx2x4" all name AVX2X4.
func ParseKernel(name string) (Kernel, error) {
	norm := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", ""))
	}
	n := norm(name)
	for _, k := range Kernels() {
		if norm(k.String()) == n {
			return k, nil
		}
	}
	if n == "plain" || n == "scalar" {
		return Plain, nil
	}
	return Plain, fmt.Errorf("unknown kernel %q", name)
}

var ErrBatchWidth = errors.New("output width is not a multiple of the kernel batch width")

// BatchWidthError reports an output width a kernel cannot process.
type BatchWidthError struct {
	Kernel   Kernel
	Cols     int
	Multiple int
}

func (e *BatchWidthError) Error() string {
	return fmt.Sprintf("%s: output frame width %d must be a multiple of %d", e.Kernel, e.Cols, e.Multiple)
}

func (e *BatchWidthError) Unwrap() error {
	return ErrBatchWidth
}
