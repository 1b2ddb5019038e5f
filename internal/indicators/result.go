package indicators

import "math"

// Result holds one or more named numeric columns aligned 1:1 with the input
// series. Warm-up rows that have no defined value carry NaN; callers decide
// whether to trim them.
type Result struct {
	// Columns preserves the order columns were produced in.
	Columns []string
	Values  map[string][]float64
}

func newResult(n int, cols ...string) *Result {
	r := &Result{
		Columns: cols,
		Values:  make(map[string][]float64, len(cols)),
	}
	for _, c := range cols {
		col := make([]float64, n)
		for i := range col {
			col[i] = math.NaN()
		}
		r.Values[c] = col
	}
	return r
}

// Column returns the named column and whether it exists.
func (r *Result) Column(name string) ([]float64, bool) {
	col, ok := r.Values[name]
	return col, ok
}

// Len returns the row count, equal to the input series length.
func (r *Result) Len() int {
	if len(r.Columns) == 0 {
		return 0
	}
	return len(r.Values[r.Columns[0]])
}

// Missing reports whether a cell holds the warm-up marker.
func Missing(v float64) bool {
	return math.IsNaN(v)
}
