package bigint

// MulWith returns x * y, computing the product with mulFn (typically one of
// the backends in the sibling mul package) and normalizing the result.
// Every backend shares this slice-in, slice-out signature so a big integer
// never needs to know which backend produced it.
func (x Int[D]) MulWith(y Int[D], mulFn func(lhs, rhs []D) []D) Int[D] {
	return FromDigits(mulFn(x.digits, y.digits))
}
