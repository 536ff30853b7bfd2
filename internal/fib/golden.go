package fib

import "github.com/agbru/fibnum/internal/bigint"

// zrt5 represents (a + b*sqrt(5)) / 2, an element of Z[sqrt(5)]/2. phi, the
// golden ratio, is zrt5{1,1} under this convention: (1+sqrt(5))/2.
type zrt5[D bigint.Digit] struct {
	a, b bigint.Int[D]
}

// mul computes x*y and halves the result to stay in the /2 convention:
// (a+b*sqrt5)(a'+b'*sqrt5) = (a*a' + 5*b*b') + (a*b' + b*a')*sqrt5, and
// since both operands are already implicitly halved, the product must be
// halved again (shifted right by one bit) to restore the convention.
func (x zrt5[D]) mul(y zrt5[D], mulFn func(lhs, rhs []D) []D) zrt5[D] {
	aa := x.a.MulWith(y.a, mulFn)
	bb := x.b.MulWith(y.b, mulFn)
	// 5*bb via shift-and-add rather than a second multiplication.
	bb5 := bb.Clone()
	bb5.Shl(2)
	bb5.Add(bb)

	ab := x.a.MulWith(y.b, mulFn)
	ba := x.b.MulWith(y.a, mulFn)

	newA := aa.Clone()
	newA.Add(bb5)
	newB := ab.Clone()
	newB.Add(ba)

	newA.Shr(1)
	newB.Shr(1)
	return zrt5[D]{a: newA, b: newB}
}

// GoldenRatio computes F(n) by binary-exponentiating phi = (1+sqrt(5))/2 in
// Z[sqrt(5)]/2 and reading off the sqrt(5) coefficient, using the identity
// phi^n = (L(n) + F(n)*sqrt(5)) / 2 where L is the Lucas sequence.
func GoldenRatio[D bigint.Digit](n uint64, mulFn func(lhs, rhs []D) []D) bigint.Int[D] {
	if n == 0 {
		return bigint.FromUint64[D](0)
	}
	fib := zrt5[D]{a: bigint.FromUint64[D](1), b: bigint.FromUint64[D](1)}
	step := fib
	n--
	for n > 0 {
		if n&1 == 1 {
			fib = fib.mul(step, mulFn)
		}
		step = step.mul(step, mulFn)
		n >>= 1
	}
	return fib.b
}
