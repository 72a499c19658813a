package interpolate

// plainX4Batch is the batch width of the batched scalar kernel.
const plainX4Batch = 4

// Interpolate computes the bilinear interpolation of src at c with scalar
// arithmetic. It is the reference all other kernels are checked against.
func Interpolate(src Image, c Coord) Pixel {
	px, fx := splitCoord(c.X)
	py, fy := splitCoord(c.Y)

	// Four neighbouring pixels
	i := src.Offset(py, px)
	j := i + src.Stride
	top := src.Data[i : i+2*PixelSize : i+2*PixelSize]
	bottom := src.Data[j : j+2*PixelSize : j+2*PixelSize]

	w := BilinearWeights(fx, fy)

	// Weighted sum of the pixels, per channel
	var out [PixelSize]uint8
	for ch := range out {
		sum := int32(top[ch])*w[0] +
			int32(top[PixelSize+ch])*w[1] +
			int32(bottom[ch])*w[2] +
			int32(bottom[PixelSize+ch])*w[3]
		out[ch] = uint8(min(sum>>8, 255))
	}
	return Pixel{B: out[0], G: out[1], R: out[2]}
}

// InterpolateN interpolates len(coords) independent samples into
// consecutive packed pixels of dst.
func InterpolateN(src Image, coords []Coord, dst []byte) {
	_ = dst[len(coords)*PixelSize-1]
	for i, c := range coords {
		p := Interpolate(src, c)
		d := dst[i*PixelSize : i*PixelSize+PixelSize : i*PixelSize+PixelSize]
		d[0], d[1], d[2] = p.B, p.G, p.R
	}
}

func plainInterpolate(src Image, coords []Coord, dst []byte, _ bool) {
	InterpolateN(src, coords[:1:1], dst)
}

func plainX4Interpolate(src Image, coords []Coord, dst []byte, _ bool) {
	InterpolateN(src, coords[:plainX4Batch:plainX4Batch], dst)
}
