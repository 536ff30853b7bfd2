package mul

import "github.com/agbru/fibnum/internal/bigint"

// ScratchLen returns the size of the scratch arena Karatsuba needs for an
// output of length outLen. Karatsuba's recursive split needs scratch for
// the operand-sum pair plus the middle cross-product at every level of the
// split; 8x the output length is a deliberately generous, non-tight bound
// that avoids re-deriving the exact recursive scratch formula per call.
func ScratchLen(outLen int) int { return outLen << 3 }

// mulScalarOverwrite writes input*scalar into out, overwriting (not adding
// to) its contents. out must be one digit longer than input.
func mulScalarOverwrite[D bigint.Digit](out, input []D, scalar D) {
	down := width[D]()
	var spill uint64
	i := 0
	for ; i < len(input); i++ {
		res := uint64(input[i])*uint64(scalar) + spill
		out[i] = D(res)
		spill = res >> down
	}
	if i < len(out) {
		out[i] = D(spill)
	}
}

func clear[D bigint.Digit](s []D) {
	for i := range s {
		s[i] = 0
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// mulRec is the recursive Karatsuba core. out must be long enough to hold
// the full product (at least len(lhs)+len(rhs)) and may share its backing
// array with lhs; scratch is a bump-allocator arena this call and its
// recursive children carve fixed-size prefixes from as they need working
// space.
//
// cleanup controls whether this call's own middle cross-product scratch
// region needs zeroing before use: the top-level call (cleanup=false)
// expects freshly allocated, already-zero scratch, and moves lhs into the
// arena and zeroes out before recursing, but every recursive
// child's destination scratch region may hold stale bytes left behind by an
// earlier sibling reusing the same arena, so every recursive call below the
// top is made with cleanup=true.
func mulRec[D bigint.Digit](out, lhs, rhs, scratch []D, cleanup bool) {
	if len(lhs) == 0 || len(rhs) == 0 {
		return
	}
	if len(rhs) == 1 {
		mulScalarOverwrite(out, lhs, rhs[0])
		return
	}
	if len(lhs) == 1 {
		mulScalarOverwrite(out, rhs, lhs[0])
		return
	}

	if !cleanup {
		// out may share its backing array with lhs, and the recursion below
		// needs out zeroed, so lhs is moved into the arena first.
		lhsCopy := scratch[:len(lhs)]
		copy(lhsCopy, lhs)
		lhs, scratch = lhsCopy, scratch[len(lhs):]
		clear(out)
	}

	half := (max(len(lhs), len(rhs)) + 1) >> 1
	lhsSplit, rhsSplit := half, half
	if lhsSplit > len(lhs) {
		lhsSplit = len(lhs)
	}
	if rhsSplit > len(rhs) {
		rhsSplit = len(rhs)
	}
	lhsLower, lhsUpper := lhs[:lhsSplit], lhs[lhsSplit:]
	rhsLower, rhsUpper := rhs[:rhsSplit], rhs[rhsSplit:]

	s := scratch
	lhsLoUp := s[:half]
	var carry bool
	if len(lhsUpper) >= len(lhsLower) {
		carry = bigint.AddClear(lhsLoUp, lhsUpper, lhsLower)
	} else {
		carry = bigint.AddClear(lhsLoUp, lhsLower, lhsUpper)
	}
	if carry {
		lhsLoUp = s[:half+1]
		lhsLoUp[half] = 1
		s = s[half+1:]
	} else {
		s = s[half:]
	}

	rhsLoUp := s[:half]
	if len(rhsUpper) >= len(rhsLower) {
		carry = bigint.AddClear(rhsLoUp, rhsUpper, rhsLower)
	} else {
		carry = bigint.AddClear(rhsLoUp, rhsLower, rhsUpper)
	}
	if carry {
		rhsLoUp = s[:half+1]
		rhsLoUp[half] = 1
		s = s[half+1:]
	} else {
		s = s[half:]
	}

	z3Len := (max(len(lhsLoUp), len(rhsLoUp)) + 1) << 1
	z3 := s[:z3Len]
	s = s[z3Len:]
	if cleanup {
		clear(z3)
	}
	mulRec(z3, lhsLoUp, rhsLoUp, s, true)

	outMid := half << 1
	z0 := out[:outMid]
	mulRec(z0, lhsLower, rhsLower, s, true)

	z2 := out[outMid:]
	mulRec(z2, lhsUpper, rhsUpper, s, true)

	bigint.Sub(z3, z3, z2)
	bigint.Sub(z3, z3, z0)

	// The whole product fits in out, so any digits of z3 beyond
	// out[half:] are zero and can be dropped.
	z0z2Shifted := out[half:]
	if len(z3) > len(z0z2Shifted) {
		z3 = z3[:len(z0z2Shifted)]
	}
	bigint.Add(z0z2Shifted, z0z2Shifted, z3)
}

// Karatsuba multiplies lhs by rhs using the recursive half-and-half split
// (z0 + z1*B^half + z2*B^(2*half), with z1 = z3 - z0 - z2 derived from a
// single product of the operand sums), reducing three sub-multiplications
// to none saved structurally but cutting the recursion's branching factor
// from four products to three.
func Karatsuba[D bigint.Digit](lhs, rhs []D) []D {
	maxSize := max(len(lhs), len(rhs))
	out := make([]D, (maxSize+1)<<1)
	scratch := make([]D, ScratchLen(len(out)))
	mulRec(out, lhs, rhs, scratch, false)
	return out
}
