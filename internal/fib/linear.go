// Package fib implements the four Fibonacci computation algorithms: plain
// linear iteration, 2x2 matrix exponentiation (both the literal eight-
// multiply form and the seven-multiply Strassen-reduced form), and
// golden-ratio iteration over Z[sqrt(5)]/2. Every algorithm other than
// Linear is parameterized by a multiplication backend from bigint/mul, so
// the same recurrence can be driven by any of the four backends.
package fib

import "github.com/agbru/fibnum/internal/bigint"

// Linear computes F(n) by plain iterative addition: a, b = b, a+b, n times.
// It performs no multiplication at all, so it is width-agnostic and serves
// as the ground-truth oracle the other three algorithms are checked
// against.
func Linear[D bigint.Digit](n uint64) bigint.Int[D] {
	a := bigint.FromUint64[D](0)
	b := bigint.FromUint64[D](1)
	for ; n > 0; n-- {
		tmp := a.Clone()
		tmp.Add(b)
		a = b
		b = tmp
	}
	return a
}
