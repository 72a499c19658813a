package interpolate

import (
	"os"
	"strconv"
	"sync"

	"golang.org/x/sys/cpu"
)

// Level is the widest SIMD register set detected on this CPU.
type Level int

const (
	LevelScalar Level = iota
	Level128
	Level256
	Level512
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case Level128:
		return "128-bit"
	case Level256:
		return "256-bit"
	case Level512:
		return "512-bit"
	default:
		return "unknown"
	}
}

// Bits returns the register width of the level, 0 for scalar.
func (l Level) Bits() int {
	switch l {
	case Level128:
		return 128
	case Level256:
		return 256
	case Level512:
		return 512
	default:
		return 0
	}
}

// NoSimdEnv is the environment variable forcing the scalar level.
const NoSimdEnv = "WARPBENCH_NO_SIMD"

func noSimd() bool {
	val := os.Getenv(NoSimdEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func detectLevel() Level {
	switch {
	case noSimd():
		return LevelScalar
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return Level512
	case cpu.X86.HasAVX2:
		return Level256
	case cpu.X86.HasSSE41, cpu.ARM64.HasASIMD:
		return Level128
	default:
		return LevelScalar
	}
}

// Detect returns the CPU's level. It is computed once.
var Detect = sync.OnceValue(func() Level {
	l := detectLevel()
	logger().Debug("interpolate: SIMD level detected", "level", l,
		"sse41", cpu.X86.HasSSE41, "avx2", cpu.X86.HasAVX2, "avx512f", cpu.X86.HasAVX512F,
		"asimd", cpu.ARM64.HasASIMD, "native", nativeKernels())
	return l
})

func nativeKernels() []string {
	var names []string
	for _, k := range Kernels() {
		if k.Bits() > 0 && k.Native() {
			names = append(names, k.String())
		}
	}
	return names
}

// Best returns the widest kernel native to this CPU whose batch width
// divides cols. A cols of 0 accepts every batch width.
func Best(cols int) Kernel {
	best := Plain
	for _, k := range Kernels() {
		if k.Native() && cols%k.BatchWidth() == 0 && k.Bits() >= best.Bits() {
			best = k
		}
	}
	logger().Debug("interpolate: kernel selected", "kernel", best, "cols", cols, "level", Detect())
	return best
}
