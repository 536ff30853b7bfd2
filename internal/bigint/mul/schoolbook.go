// Package mul implements the four pluggable multiplication backends for
// bigint.Int: schoolbook, Karatsuba, direct DFT and Cooley-Tukey FFT. Each
// backend is a plain function over little-endian digit slices — the same
// window-based calling convention bigint uses internally — so a backend can
// be selected per instantiation of an Int[D] without runtime indirection.
package mul

import (
	"github.com/agbru/fibnum/internal/bigint"
)

// Func is the common shape every backend in this package satisfies: a
// multiplication of two little-endian digit vectors producing a third,
// unnormalized (may carry trailing zero digits).
type Func[D bigint.Digit] func(lhs, rhs []D) []D

func width[D bigint.Digit]() uint {
	switch any(D(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		panic("mul: unsupported digit width")
	}
}

// muladd adds input*scalar into the existing contents of out, propagating
// carry past the end of input. out must be at least one digit longer than
// input and must not alias input.
func muladd[D bigint.Digit](out, input []D, scalar D) {
	down := width[D]()
	var spill uint64
	i := 0
	for ; i < len(input); i++ {
		res := uint64(out[i]) + uint64(input[i])*uint64(scalar) + spill
		out[i] = D(res)
		spill = res >> down
	}
	if spill == 0 {
		return
	}
	old := out[i]
	out[i] += D(spill)
	if out[i] < old {
		i++
		out[i]++
	}
}

// Schoolbook multiplies lhs by rhs digit by digit with a 64-bit
// accumulator, fusing multiply and add at each step. It is O(len(lhs) *
// len(rhs)) and is intended for digit widths of 16 bits or more, where the
// accumulator has enough headroom over digit*digit to also carry addition
// and spill without overflowing.
func Schoolbook[D bigint.Digit](lhs, rhs []D) []D {
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil
	}
	out := make([]D, len(lhs)+len(rhs))
	for j, scalar := range rhs {
		muladd(out[j:], lhs, scalar)
	}
	return out
}
