package interpolate

import "warpbench/parallel"

// Resample interpolates src at every coordinate with kernel k and returns
// a new output image the size of the coordinate grid. A nil pool runs
// single-threaded.
func Resample(k Kernel, pool *parallel.Pool, src Image, coords Coords) (Image, error) {
	r, err := NewRunner(k, coords.Cols)
	if err != nil {
		return Image{}, err
	}
	dst := NewImage(coords.Rows, coords.Cols)
	if err := r.Run(pool, src, coords, dst); err != nil {
		return Image{}, err
	}
	return dst, nil
}
