//go:build !amd64 || noasm

package interpolate

func asmKernels() map[Kernel]batchFunc {
	return nil
}
