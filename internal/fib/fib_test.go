package fib

import (
	"testing"

	"github.com/agbru/fibnum/internal/bigint/mul"
)

var knownValues = []struct {
	n    uint64
	want string
}{
	{0, "0"},
	{1, "1"},
	{2, "1"},
	{3, "2"},
	{10, "55"},
	{20, "6765"},
	{92, "7540113804746346429"},
	{100, "354224848179261915075"},
}

func TestLinearKnownValues(t *testing.T) {
	for _, tc := range knownValues {
		if got := Linear[uint32](tc.n).String(); got != tc.want {
			t.Errorf("Linear(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestMatrixSimpleAgreesWithLinear(t *testing.T) {
	for _, tc := range knownValues {
		if got := MatrixSimple[uint32](tc.n, mul.Schoolbook[uint32]).String(); got != tc.want {
			t.Errorf("MatrixSimple(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestMatrixStrassenAgreesWithLinear(t *testing.T) {
	for _, tc := range knownValues {
		if got := MatrixStrassen[uint32](tc.n, mul.Schoolbook[uint32]).String(); got != tc.want {
			t.Errorf("MatrixStrassen(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestGoldenRatioAgreesWithLinear(t *testing.T) {
	for _, tc := range knownValues {
		if got := GoldenRatio[uint8](tc.n, mul.FFT).String(); got != tc.want {
			t.Errorf("GoldenRatio(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestAllBackendCombinationsAgree(t *testing.T) {
	type combo struct {
		name string
		fn   func(n uint64) string
	}
	combos := []combo{
		{"matrix-simple/schoolbook", func(n uint64) string { return MatrixSimple[uint32](n, mul.Schoolbook[uint32]).String() }},
		{"matrix-simple/karatsuba", func(n uint64) string { return MatrixSimple[uint32](n, mul.Karatsuba[uint32]).String() }},
		{"matrix-strassen/schoolbook", func(n uint64) string { return MatrixStrassen[uint32](n, mul.Schoolbook[uint32]).String() }},
		{"matrix-strassen/karatsuba", func(n uint64) string { return MatrixStrassen[uint32](n, mul.Karatsuba[uint32]).String() }},
		{"matrix-simple/dft", func(n uint64) string { return MatrixSimple[uint8](n, mul.DFT).String() }},
		{"matrix-simple/fft", func(n uint64) string { return MatrixSimple[uint8](n, mul.FFT).String() }},
		{"golden/dft", func(n uint64) string { return GoldenRatio[uint8](n, mul.DFT).String() }},
		{"golden/fft", func(n uint64) string { return GoldenRatio[uint8](n, mul.FFT).String() }},
	}
	for _, tc := range knownValues {
		for _, c := range combos {
			if got := c.fn(tc.n); got != tc.want {
				t.Errorf("%s F(%d) = %s, want %s", c.name, tc.n, got, tc.want)
			}
		}
	}

	// knownValues tops out at F(100); push every combo out to index 512
	// against the Linear oracle rather than a literal table, keeping
	// a fast table-only run available via -short.
	maxN := uint64(150)
	if !testing.Short() {
		maxN = 512
	}
	oracle := Linear[uint32]
	for n := uint64(101); n <= maxN; n += 7 {
		want := oracle(n).String()
		for _, c := range combos {
			if got := c.fn(n); got != want {
				t.Errorf("%s F(%d) = %s, want %s", c.name, n, got, want)
			}
		}
	}
}
