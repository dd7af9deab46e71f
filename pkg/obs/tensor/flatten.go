package tensor

import "strconv"

// Slice is a 2-D table cut from a tensor by fixing all leading axes beyond
// the last two. Columns carry the full path of fixed leading indices in
// their names.
type Slice struct {
	// Columns holds the column names in order.
	Columns []string

	// Rows holds the table values, outer index by row.
	Rows [][]float64
}

// Flatten decomposes a tensor into an ordered sequence of 2-D slices.
//
// Leading axes beyond the last two are iterated depth first in ascending
// index order; each fixed index extends the column-name prefix of the
// slices below it, segments joined by "_". A tensor of rank 2 or less
// produces a single slice whose columns are bare column numbers. Rank-1
// tensors become a single column.
func Flatten(t *Tensor) []Slice {
	return flatten(t, "")
}

func flatten(t *Tensor, prefix string) []Slice {
	if t.Rank() > 2 {
		var slices []Slice
		for i := 0; i < t.Shape()[0]; i++ {
			sub := flatten(t.Sub(i), prefix+strconv.Itoa(i)+"_")
			slices = append(slices, sub...)
		}
		return slices
	}

	shape := t.Shape()
	rows := shape[0]
	cols := 1
	if len(shape) == 2 {
		cols = shape[1]
	}

	s := Slice{
		Columns: make([]string, cols),
		Rows:    make([][]float64, rows),
	}
	for c := 0; c < cols; c++ {
		s.Columns[c] = prefix + strconv.Itoa(c)
	}
	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			row[c] = t.At(r, c)
		}
		s.Rows[r] = row
	}
	return []Slice{s}
}
