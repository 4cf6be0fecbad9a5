package term

import (
	"math"

	"go-car-shooter/internal/component"
	"go-car-shooter/pkg/utils"
)

// Grid maps field coordinates onto terminal cells.
type Grid struct {
	Field      component.Field
	Cols, Rows int
}

// Cell returns the cell containing (x, y) and whether it is on screen.
func (g Grid) Cell(x, y float64) (int, int, bool) {
	if g.Cols <= 0 || g.Rows <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(x / g.Field.Width * float64(g.Cols)))
	cy := int(math.Floor(y / g.Field.Height * float64(g.Rows)))
	ok := cx >= 0 && cx < g.Cols && cy >= 0 && cy < g.Rows
	return cx, cy, ok
}

// ClampedCell is Cell pinned to the visible area.
func (g Grid) ClampedCell(x, y float64) (int, int) {
	cx, cy, _ := g.Cell(x, y)
	return utils.ClampInt(cx, 0, g.Cols-1), utils.ClampInt(cy, 0, g.Rows-1)
}

var headingGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph picks the arrow closest to the angle. Screen Y grows downward.
func HeadingGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}
