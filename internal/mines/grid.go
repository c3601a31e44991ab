package mines

import (
	"strings"
)

type Cell byte

const (
	Mine  Cell = '*'
	Blank Cell = ' '
	/*
	 * Input cells are only ever Mine or Blank. Annotated output
	 * additionally contains the ASCII digits '1' to '8' for blank
	 * cells with mined neighbors (8 is the most neighbors a cell
	 * can have).
	 */
)

// validInput reports whether c may appear in an unannotated field.
func (c Cell) validInput() bool {
	return c == Mine || c == Blank
}

// Grid is a rectangular minefield stored as a flat slice in row-major
// order, indexed y*width+x.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// ParseGrid builds a Grid from text rows. Every row must have the same
// length as the first one, and every byte must be a Mine or a Blank;
// anything else fails the whole call with an [InvalidGridError] or an
// [InvalidCellError].
func ParseGrid(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}
	g := Grid{
		cells:  make([]Cell, 0, len(rows)*len(rows[0])),
		width:  len(rows[0]),
		height: len(rows),
	}
	for y, row := range rows {
		if len(row) != g.width {
			return Grid{}, InvalidGridError{Row: y, Want: g.width, Got: len(row)}
		}
		for x := range len(row) {
			c := Cell(row[x])
			if !c.validInput() {
				return Grid{}, InvalidCellError{X: x, Y: y, Cell: byte(c)}
			}
			g.cells = append(g.cells, c)
		}
	}
	return g, nil
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// Rows renders the grid back into one string per row.
func (g Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	for y := range g.height {
		rows = append(rows, string(g.cells[y*g.width:(y+1)*g.width]))
	}
	return rows
}

func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g.Rows() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (g Grid) mineCount() (count int) {
	for _, c := range g.cells {
		if c == Mine {
			count++
		}
	}
	return
}
