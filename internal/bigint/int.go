package bigint

import (
	"fmt"
	"strings"
)

// Int is an arbitrary-precision unsigned integer stored as a little-endian
// vector of digits of width D. The zero value represents zero. Digits are
// always normalized: the vector never carries a trailing (most
// significant) zero digit, so a nil/empty slice is the only representation
// of zero.
type Int[D Digit] struct {
	digits []D
}

// Digits returns the little-endian digit vector backing x. The returned
// slice must not be mutated.
func (x Int[D]) Digits() []D { return x.digits }

// FromDigits takes ownership of v (little-endian) and normalizes it.
func FromDigits[D Digit](v []D) Int[D] {
	x := Int[D]{digits: v}
	x.fullReduce()
	return x
}

// FromUint64 constructs the big integer equal to v.
func FromUint64[D Digit](v uint64) Int[D] {
	w := width[D]()
	var digits []D
	for v != 0 {
		digits = append(digits, D(v))
		v >>= w
	}
	return Int[D]{digits: digits}
}

// IsZero reports whether x is zero.
func (x Int[D]) IsZero() bool { return len(x.digits) == 0 }

// reduceOnce trims a single trailing zero digit, if present.
func (x *Int[D]) reduceOnce() {
	if n := len(x.digits); n > 0 && x.digits[n-1] == 0 {
		x.digits = x.digits[:n-1]
	}
}

// fullReduce trims all trailing zero digits.
func (x *Int[D]) fullReduce() {
	n := len(x.digits)
	for n > 0 && x.digits[n-1] == 0 {
		n--
	}
	x.digits = x.digits[:n]
}

// Clone returns an independent copy of x.
func (x Int[D]) Clone() Int[D] {
	out := make([]D, len(x.digits))
	copy(out, x.digits)
	return Int[D]{digits: out}
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
// Both operands must be normalized, which every constructor and mutator in
// this package guarantees.
func (x Int[D]) Cmp(y Int[D]) int {
	if len(x.digits) != len(y.digits) {
		if len(x.digits) < len(y.digits) {
			return -1
		}
		return 1
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Inc increments x in place by one.
func (x *Int[D]) Inc() {
	if Increment(x.digits) {
		x.digits = append(x.digits, 1)
	}
}

// Dec decrements x in place by one. Decrementing zero clamps to zero.
func (x *Int[D]) Dec() {
	if Decrement(x.digits) {
		x.digits = x.digits[:0]
		return
	}
	x.reduceOnce()
}

// Add sets x to x + y in place and returns x.
func (x *Int[D]) Add(y Int[D]) *Int[D] {
	lhs, rhs := x.digits, y.digits
	if len(rhs) > len(lhs) {
		lhs, rhs = rhs, lhs
	}
	out := make([]D, len(lhs)+1)
	if Add(out, lhs, rhs) {
		out[len(lhs)] = 1
	} else {
		out = out[:len(lhs)]
	}
	x.digits = out
	return x
}

// Sub sets x to x - y in place and returns x. The caller must ensure
// x >= y; underflow wraps rather than erroring, matching the unsigned
// digit-window primitives this is built on.
func (x *Int[D]) Sub(y Int[D]) *Int[D] {
	out := make([]D, len(x.digits))
	Sub(out, x.digits, y.digits)
	x.digits = out
	x.fullReduce()
	return x
}

// And sets x to x & y in place and returns x.
func (x *Int[D]) And(y Int[D]) *Int[D] {
	n := len(x.digits)
	if len(y.digits) < n {
		n = len(y.digits)
	}
	out := make([]D, n)
	And(out, x.digits[:n], y.digits[:n])
	x.digits = out
	x.fullReduce()
	return x
}

// Or sets x to x | y in place and returns x.
func (x *Int[D]) Or(y Int[D]) *Int[D] {
	lhs, rhs := x.digits, y.digits
	if len(rhs) > len(lhs) {
		lhs, rhs = rhs, lhs
	}
	out := make([]D, len(lhs))
	copy(out, lhs)
	Or(out[:len(rhs)], lhs[:len(rhs)], rhs)
	x.digits = out
	return x
}

// Shl shifts x left by n bits in place and returns x.
func (x *Int[D]) Shl(n uint) *Int[D] {
	if len(x.digits) == 0 {
		return x
	}
	w := width[D]()
	whole, partial := n/w, n%w
	out := make([]D, whole)
	out = append(out, x.digits...)
	if partial != 0 {
		spill := Lshift(out[whole:], out[whole:], partial)
		if spill != 0 {
			out = append(out, spill)
		}
	}
	x.digits = out
	x.fullReduce()
	return x
}

// Shr shifts x right by n bits in place and returns x.
func (x *Int[D]) Shr(n uint) *Int[D] {
	w := width[D]()
	whole, partial := n/w, n%w
	if whole >= uint(len(x.digits)) {
		x.digits = x.digits[:0]
		return x
	}
	rest := x.digits[whole:]
	if partial != 0 {
		Rshift(rest, rest, partial)
	}
	out := make([]D, len(rest))
	copy(out, rest)
	x.digits = out
	x.fullReduce()
	return x
}

// FromDecimalString parses a nonempty string of ASCII decimal digits into a
// big integer via reverse double-dabble (the same algorithm, run backwards,
// that Render uses to produce decimal output). Any byte outside '0'-'9',
// including a sign or whitespace, is a construction error: this package
// has no notion of a signed or malformed value.
func FromDecimalString[D Digit](s string) (Int[D], error) {
	if s == "" {
		return Int[D]{}, fmt.Errorf("bigint: empty decimal string")
	}
	bcd := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Int[D]{}, fmt.Errorf("bigint: invalid decimal digit %q at offset %d", c, i)
		}
		bcd[len(s)-1-i] = c - '0'
	}

	var result Int[D]
	bit := FromUint64[D](1)
	for len(bcd) > 0 {
		newBit := false
		for i := len(bcd) - 1; i >= 0; i-- {
			if newBit {
				bcd[i] |= 1 << 4
			}
			newBit = bcd[i]&1 != 0
			bcd[i] >>= 1
			if bcd[i] >= 8 {
				bcd[i] -= 3
			}
		}
		for len(bcd) > 0 && bcd[len(bcd)-1] == 0 {
			bcd = bcd[:len(bcd)-1]
		}
		if newBit {
			result.Or(bit)
		}
		bit.Shl(1)
	}
	return result, nil
}

// Render returns the decimal representation of x. When full is false and
// the value has more than ten significant decimal digits, the result is
// truncated to the leading ten significant figures with an "e+<exponent>"
// suffix, e.g. "3.542248481e+20".
//
// Render uses the forward double-dabble algorithm: it sweeps the digit
// vector from most to least significant hardware digit, bit by bit,
// maintaining a BCD accumulator. In truncated mode the accumulator is
// capped at its 32 most significant BCD nibbles (the least significant ones
// are dropped and only counted toward the exponent), since no more than
// ten of them will ever be printed; this keeps rendering huge truncated
// values cheap.
func (x Int[D]) Render(full bool) string {
	if len(x.digits) == 0 {
		return "0"
	}
	w := width[D]()
	var topBit D = 1 << (w - 1)

	var bcd []uint8 // index 0 = least significant decimal digit
	offset := 0

	for i := len(x.digits) - 1; i >= 0; i-- {
		word := x.digits[i]
		for bit := topBit; bit != 0; bit >>= 1 {
			newBit := word&bit != 0
			for j := range bcd {
				if bcd[j] >= 5 {
					bcd[j] += 3
				}
				bcd[j] <<= 1
				if newBit {
					bcd[j] |= 1
				}
				newBit = bcd[j] > 0xf
				if newBit {
					bcd[j] &= 0xf
				}
			}
			if newBit {
				bcd = append(bcd, 1)
			}
		}
		if !full && len(bcd) > 32 {
			toErase := len(bcd) - 32
			offset += toErase
			bcd = bcd[toErase:]
		}
	}

	numDigits := len(bcd) + offset
	if !full && numDigits > 10 {
		var sb strings.Builder
		sb.WriteByte('0' + bcd[len(bcd)-1])
		sb.WriteByte('.')
		idx := len(bcd) - 2
		for i := 0; i < 9; i++ {
			sb.WriteByte('0' + bcd[idx])
			idx--
		}
		fmt.Fprintf(&sb, "e+%d", numDigits-1)
		return sb.String()
	}

	var sb strings.Builder
	for i := len(bcd) - 1; i >= 0; i-- {
		sb.WriteByte('0' + bcd[i])
	}
	return sb.String()
}

// String renders x in full (untruncated) decimal.
func (x Int[D]) String() string { return x.Render(true) }

// HexDigits renders x's raw digit vector as lower-case hexadecimal, most
// significant digit first, each digit formatted at its minimal width (no
// zero-padding between digits). This mirrors the driver CLI's CHECK output
// mode, which exists to let an external harness diff raw digit vectors
// across backend/width combinations rather than to be human-legible.
func (x Int[D]) HexDigits() string {
	if len(x.digits) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := len(x.digits) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%x", uint64(x.digits[i]))
	}
	return sb.String()
}
