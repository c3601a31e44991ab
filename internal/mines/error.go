package mines

import "fmt"

// InvalidGridError reports a ragged minefield: row Row has Got cells
// where the first row promised Want.
type InvalidGridError struct {
	Row, Want, Got int
}

// [InvalidGridError] implements [error]
func (e InvalidGridError) Error() string {
	return fmt.Sprintf("invalid grid: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// InvalidCellError reports a byte outside the input alphabet at (X, Y).
type InvalidCellError struct {
	X, Y int
	Cell byte
}

// [InvalidCellError] implements [error]
func (e InvalidCellError) Error() string {
	return fmt.Sprintf("invalid cell %q at %d:%d", e.Cell, e.X, e.Y)
}
