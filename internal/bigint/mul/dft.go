package mul

import "math"

// DFT multiplies two byte-digit vectors by evaluating both operands'
// discrete Fourier transforms, multiplying pointwise, and inverting. It is
// O(N^2) in the padded transform size N = 2*max(len(lhs), len(rhs)) and
// exists as a straightforward, easy-to-verify reference for the
// asymptotically faster Cooley-Tukey backend in fft.go; both backends are
// restricted to byte digits since the digit-to-complex round trip this
// relies on only needs to preserve 8 bits of precision per coefficient.
func DFT(lhs, rhs []uint8) []uint8 {
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil
	}
	size := 2 * max(len(lhs), len(rhs))
	lc := toComplex(lhs, size)
	rc := toComplex(rhs, size)
	lf := dft(lc, false)
	rf := dft(rc, false)
	for i := range lf {
		lf[i] *= rf[i]
	}
	conv := dft(lf, true)
	return fold(fromComplex(conv))
}

func toComplex(x []uint8, size int) []complex128 {
	out := make([]complex128, size)
	for i, v := range x {
		out[i] = complex(float64(v), 0)
	}
	return out
}

// dft evaluates the forward (inverse=false) or inverse discrete Fourier
// transform of x directly, in O(len(x)^2) time. Both the per-output
// "coef" factor and the outer "omega" root are maintained as running
// products across the loop rather than recomputed via repeated calls to a
// power function.
func dft(x []complex128, inverse bool) []complex128 {
	n := len(x)
	theta := 2 * math.Pi / float64(n)
	var primitive complex128
	if inverse {
		primitive = complexExp(theta)
	} else {
		primitive = complexExp(-theta)
	}

	out := make([]complex128, n)
	omega := complex(1, 0)
	for k := 0; k < n; k++ {
		coef := complex(1, 0)
		var sum complex128
		for _, xn := range x {
			sum += coef * xn
			coef *= omega
		}
		if inverse {
			out[k] = sum / complex(float64(n), 0)
		} else {
			out[k] = sum
		}
		omega *= primitive
	}
	return out
}

func complexExp(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

func fromComplex(x []complex128) []uint64 {
	out := make([]uint64, len(x))
	for i, v := range x {
		out[i] = uint64(math.Round(real(v)))
	}
	return out
}

// fold carry-propagates a vector of byte-sized running sums (which may
// individually exceed a byte, since each is a rounded convolution sum of
// many byte products)
// down into a normalized byte-digit vector, appending extra digits for any
// residual carry that escapes the input length.
func fold(x []uint64) []uint8 {
	out := make([]uint8, 0, len(x)+8)
	var spill uint64
	for _, v := range x {
		sum := v + spill
		out = append(out, uint8(sum))
		spill = sum >> 8
	}
	for spill != 0 {
		out = append(out, uint8(spill))
		spill >>= 8
	}
	return out
}
