package interpolate

import "math"

// Weights are the fixed-point bilinear weights of the four neighbours of a
// sample, ordered top-left, top-right, bottom-left, bottom-right. Each is in
// [0, 256] and together they sum to exactly 256.
type Weights [4]int32

// weightOne is the fixed-point value of a full weight.
const weightOne = 256

// BilinearWeights converts the fractional parts of a sample position into
// fixed-point weights.
func BilinearWeights(fx, fy float32) Weights {
	fx1 := 1 - fx
	fy1 := 1 - fy
	w := ps4{fx1 * fy1 * weightOne, fx * fy1 * weightOne, fx1 * fy * weightOne, fx * fy * weightOne}
	return Weights(balanceWeights(cvtpsEpi32(w)))
}

// balanceWeights folds the rounding residual into the largest weight so the
// four weights of one pixel sum to weightOne. The residual is at most 2 in
// magnitude, the largest weight is at least 64, so no weight leaves [0, 256].
func balanceWeights(w epi32x4) epi32x4 {
	sum := w[0] + w[1] + w[2] + w[3]
	if sum == weightOne {
		return w
	}
	m := 0
	for i := 1; i < 4; i++ {
		if w[i] > w[m] {
			m = i
		}
	}
	w[m] += weightOne - sum
	return w
}

// splitCoord returns floor(v) and the fractional remainder v - floor(v).
func splitCoord(v float32) (int, float32) {
	f := float32(math.Floor(float64(v)))
	return int(f), v - f
}

// neighbourhood returns the byte offset of the top-left neighbour of c.
func neighbourhood(src Image, c Coord) int {
	py, _ := splitCoord(c.Y)
	px, _ := splitCoord(c.X)
	return src.Offset(py, px)
}
