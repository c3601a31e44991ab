package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// Annotate replaces every blank cell of a minefield with the number of
// mines among its up to 8 neighbors, leaving mines and zero-count
// blanks as they are. Rows must be equally long and contain only ' '
// and '*'; a violation rejects the whole call. An empty field is
// returned as is.
func Annotate(rows []string) ([]string, error) {
	g, err := ParseGrid(rows)
	if err != nil {
		return nil, err
	}
	return g.Annotate().Rows(), nil
}

// Annotate returns an annotated copy of the grid. The receiver is not
// modified.
func (g Grid) Annotate() Grid {
	/*
	 * Counts are accumulated in a separate grid and merged with the
	 * original afterwards, so every count is based on the original
	 * mine positions and never on partially updated cells. One pass
	 * over the mines with up to 8 increments each keeps the cost at
	 * O(mines) plus the copy, rather than scanning every cell's
	 * neighborhood.
	 */
	counts := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		if c != Mine {
			continue
		}
		x, y := i%g.width, i/g.width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if xx < 0 || xx >= g.width || yy < 0 || yy >= g.height {
					continue
				}
				counts[yy*g.width+xx]++
			}
		}
	}

	out := Grid{
		cells:  make([]Cell, len(g.cells)),
		width:  g.width,
		height: g.height,
	}
	copy(out.cells, g.cells)
	for i, n := range counts {
		if g.cells[i] == Blank && n > 0 {
			out.cells[i] = Cell('0' + n)
		}
	}

	Log.WithFields(logrus.Fields{
		"width":  g.width,
		"height": g.height,
		"mines":  g.mineCount(),
	}).Debug("annotated grid")

	return out
}
