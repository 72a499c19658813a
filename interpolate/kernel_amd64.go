//go:build amd64 && !noasm

package interpolate

import "golang.org/x/sys/cpu"

// The assembly kernels read 8 bytes at the top-left neighbour and 8 bytes
// ending at the bottom-right one. They write one uint32 per pixel to out.

//go:noescape
func bilinearSSE4(src *byte, stride int, coords *Coord, out *uint32, n int)

//go:noescape
func bilinearAVX2(src *byte, stride int, coords *Coord, out *uint32, n int)

//go:noescape
func bilinearAVX512(src *byte, stride int, coords *Coord, out *uint32, n int)

// readable reports whether every neighbour the assembly reads for c lies
// inside src. When it does not, the portable kernel runs instead and fails
// the way it would without assembly.
func readable(src Image, c []Coord) bool {
	if src.Stride < src.Cols*PixelSize || len(src.Data) < (src.Rows-1)*src.Stride+src.Cols*PixelSize {
		return false
	}
	maxY, maxX := float32(src.Rows-1), float32(src.Cols-1)
	for _, p := range c {
		if !(p.Y >= 0 && p.Y < maxY && p.X >= 0 && p.X < maxX) {
			return false
		}
	}
	return true
}

func sse4Asm(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:sse4Batch:sse4Batch]
	if !readable(src, c) {
		sse4Interpolate(src, c, dst, canOverwrite)
		return
	}
	var stored [sse4Batch]uint32
	bilinearSSE4(&src.Data[0], src.Stride, &c[0], &stored[0], sse4Batch)
	storePixels(dst, stored[:], canOverwrite)
}

func avx2Asm(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:avx2Batch:avx2Batch]
	if !readable(src, c) {
		avx2Interpolate(src, c, dst, canOverwrite)
		return
	}
	var stored [avx2Batch]uint32
	bilinearAVX2(&src.Data[0], src.Stride, &c[0], &stored[0], avx2Batch)
	storePixels(dst, stored[:], canOverwrite)
}

func avx2X4Asm(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:avx2X4Batch:avx2X4Batch]
	if !readable(src, c) {
		avx2X4Interpolate(src, c, dst, canOverwrite)
		return
	}
	var stored [avx2X4Batch]uint32
	bilinearAVX2(&src.Data[0], src.Stride, &c[0], &stored[0], avx2X4Batch)
	storePixels(dst, stored[:], canOverwrite)
}

func avx512Asm(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:avx512Batch:avx512Batch]
	if !readable(src, c) {
		avx512Interpolate(src, c, dst, canOverwrite)
		return
	}
	var stored [avx512Batch]uint32
	bilinearAVX512(&src.Data[0], src.Stride, &c[0], &stored[0], avx512Batch)
	storePixels(dst, stored[:], canOverwrite)
}

func avx512X8Asm(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:avx512X8Batch:avx512X8Batch]
	if !readable(src, c) {
		avx512X8Interpolate(src, c, dst, canOverwrite)
		return
	}
	var stored [avx512X8Batch]uint32
	bilinearAVX512(&src.Data[0], src.Stride, &c[0], &stored[0], avx512X8Batch)
	storePixels(dst, stored[:], canOverwrite)
}

// asmKernels returns the assembly kernels this CPU can run.
func asmKernels() map[Kernel]batchFunc {
	ks := make(map[Kernel]batchFunc)
	if cpu.X86.HasSSE41 && cpu.X86.HasSSSE3 {
		ks[SSE4] = sse4Asm
	}
	if cpu.X86.HasAVX && cpu.X86.HasAVX2 {
		ks[AVX2] = avx2Asm
		ks[AVX2X4] = avx2X4Asm
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		ks[AVX512] = avx512Asm
		ks[AVX512X8] = avx512X8Asm
	}
	return ks
}
