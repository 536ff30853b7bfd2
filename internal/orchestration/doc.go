package orchestration

// allCombos lists every algorithm/backend pairing --algo=all runs. The
// byte-digit-only backends (dft, fft) are only reachable through the
// 8-bit width path, so they're listed once here and Run picks the right
// instantiation based on the caller's requested width.
var allCombos = []Combo{
	{Algo: "linear"},
	{Algo: "matrix-simple", Backend: "schoolbook"},
	{Algo: "matrix-simple", Backend: "karatsuba"},
	{Algo: "matrix-simple", Backend: "dft"},
	{Algo: "matrix-simple", Backend: "fft"},
	{Algo: "matrix-strassen", Backend: "schoolbook"},
	{Algo: "matrix-strassen", Backend: "karatsuba"},
	{Algo: "golden", Backend: "dft"},
	{Algo: "golden", Backend: "fft"},
}

// CombosForConfig resolves the --algo/--backend selection into the list
// of combos Run should execute. "all" runs every known combo for
// cross-validation; "linear" and any explicit backend yield one combo;
// backend "auto" on a non-linear algorithm is widened to both schoolbook
// and karatsuba so the comparison table still has something to compare.
func CombosForConfig(algo, backend string) []Combo {
	if algo == "all" {
		return allCombos
	}
	if algo == "linear" {
		return []Combo{{Algo: "linear"}}
	}
	if backend != "auto" {
		return []Combo{{Algo: algo, Backend: backend}}
	}
	return []Combo{
		{Algo: algo, Backend: "schoolbook"},
		{Algo: algo, Backend: "karatsuba"},
	}
}
