package mul

import "math"

// FFT multiplies two byte-digit vectors via an iterative Cooley-Tukey
// decimation-in-time transform, O(N log N) in the padded transform size N.
// Like DFT it is restricted to byte digits.
func FFT(lhs, rhs []uint8) []uint8 {
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil
	}
	size := pow2CeilStrict(2 * max(len(lhs), len(rhs)))
	lc := bitReverseShuffle(lhs, size)
	rc := bitReverseShuffle(rhs, size)
	fftButterfly(lc, false)
	fftButterfly(rc, false)
	for i := range lc {
		lc[i] *= rc[i]
	}
	conv := bitReverseShuffleComplex(lc, size)
	fftButterfly(conv, true)
	return fold(fromComplex(conv))
}

// pow2CeilStrict returns the smallest power of two strictly greater than x.
// Note that this always grows the input, even when x is itself already a
// power of two: the transform needs room for one more doubling than a
// plain round-up-to-power-of-two would give it.
func pow2CeilStrict(x int) int {
	y := 1
	for y <= x {
		y <<= 1
	}
	return y
}

// incRev advances a bit-reversed counter: given x, the bit-reversal (within
// a field of log2(size) bits) of some index i, it returns the bit-reversal
// of i+1, without recomputing the reversal from scratch.
func incRev(x, size int) int {
	topBit := size
	for {
		topBit >>= 1
		if x&topBit == 0 {
			break
		}
		x ^= topBit
	}
	x |= topBit
	return x
}

func bitReverseShuffle(x []uint8, size int) []complex128 {
	out := make([]complex128, size)
	ri := 0
	for i := 0; i < len(x); i++ {
		out[ri] = complex(float64(x[i]), 0)
		ri = incRev(ri, size)
	}
	return out
}

func bitReverseShuffleComplex(x []complex128, size int) []complex128 {
	out := make([]complex128, size)
	ri := 0
	for i := 0; i < len(x); i++ {
		out[ri] = x[i]
		ri = incRev(ri, size)
	}
	return out
}

// fftButterfly runs the iterative decimation-in-time Cooley-Tukey butterfly
// network in place over x, which must already be bit-reverse permuted and
// whose length must be a power of two. inverse selects the conjugate root
// and divides the result by len(x) at the end.
func fftButterfly(x []complex128, inverse bool) {
	n := len(x)
	for m := 2; m <= n; m <<= 1 {
		theta := 2 * math.Pi / float64(m)
		var omega complex128
		if inverse {
			omega = complexExp(theta)
		} else {
			omega = complexExp(-theta)
		}
		half := m >> 1
		for k := 0; k < n; k += m {
			coef := complex(1, 0)
			for j := 0; j < half; j++ {
				t := coef * x[k+j+half]
				u := x[k+j]
				x[k+j] = u + t
				x[k+j+half] = u - t
				coef *= omega
			}
		}
	}
	if inverse {
		nf := complex(float64(n), 0)
		for i := range x {
			x[i] /= nf
		}
	}
}
