package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/interfaces"
	"go-car-shooter/pkg/utils"
)

var (
	rgbBackground = tcell.NewRGBColor(13, 27, 42)
	rgbRoad       = tcell.NewRGBColor(255, 255, 0)
	rgbVehicle    = tcell.NewRGBColor(255, 0, 0)
	rgbTurret     = tcell.NewRGBColor(170, 170, 170)
	rgbProjectile = tcell.NewRGBColor(255, 255, 0)
	rgbTarget     = tcell.NewRGBColor(255, 68, 68)
	rgbStatus     = tcell.NewRGBColor(240, 240, 240)
	rgbStatusBg   = tcell.NewRGBColor(30, 45, 60)
)

// Renderer draws snapshots into a tcell screen. The bottom row holds the status line.
// It implements the render, HUD and game-over sinks.
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	field  component.Field
	over   bool
}

func NewRenderer(screen tcell.Screen, field component.Field) *Renderer {
	return &Renderer{screen: screen, field: field}
}

func (r *Renderer) grid() Grid {
	w, h := r.screen.Size()
	return Grid{Field: r.field, Cols: w, Rows: max(h-1, 0)}
}

func (r *Renderer) Render(snap interfaces.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.grid()
	base := tcell.StyleDefault.Background(rgbBackground)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	// разметка: пунктир по центру
	roadX, _, _ := g.Cell(snap.Field.Width/2, 0)
	for y := 0; y < g.Rows; y++ {
		if (y/2)%2 == 0 {
			r.screen.SetContent(roadX, y, '¦', nil, base.Foreground(rgbRoad))
		}
	}

	for _, p := range snap.Projectiles {
		r.put(g, p.X, p.Y, '•', base.Foreground(rgbProjectile))
	}
	for _, t := range snap.Targets {
		glyph := '#'
		if t.Health < config.TargetHealth {
			glyph = rune('0' + max(t.Health, 0))
		}
		r.put(g, t.X, t.Y, glyph, base.Foreground(rgbTarget).Bold(true))
	}

	r.drawVehicle(g, snap.Vehicle, base)

	for _, p := range snap.Effects {
		c := p.Color
		style := base.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		glyph := '*'
		if p.Opacity() < 0.4 {
			glyph = '.'
		}
		r.put(g, p.X, p.Y, glyph, style)
	}
}

func (r *Renderer) drawVehicle(g Grid, v component.Vehicle, base tcell.Style) {
	cx, cy := g.ClampedCell(v.X, v.Y)
	dx, dy := v.Direction()
	nose := v.HalfWidth()
	nx, ny := g.ClampedCell(v.X+dx*nose, v.Y+dy*nose)
	for _, pt := range utils.Line(cx, cy, nx, ny)[1:] {
		r.screen.SetContent(pt.X, pt.Y, '=', nil, base.Foreground(rgbTurret))
	}
	r.screen.SetContent(cx, cy, HeadingGlyph(v.Heading), nil, base.Foreground(rgbVehicle).Bold(true))
}

func (r *Renderer) put(g Grid, x, y float64, glyph rune, style tcell.Style) {
	if cx, cy, ok := g.Cell(x, y); ok {
		r.screen.SetContent(cx, cy, glyph, nil, style)
	}
}

// StatusLine formats the HUD for the bottom row.
func StatusLine(h interfaces.HUD) string {
	line := fmt.Sprintf(" Score %d  Ammo %d/%d  Health %d  Speed %d ", h.Score, h.Ammo, config.MaxAmmo, h.Health, h.Speed)
	if h.Over {
		line += " GAME OVER  r restart  esc quit"
	}
	return line
}

// UpdateHUD draws the status line and flushes the frame.
func (r *Renderer) UpdateHUD(h interfaces.HUD) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.over = h.Over
	w, hgt := r.screen.Size()
	if hgt == 0 {
		return
	}
	style := tcell.StyleDefault.Background(rgbStatusBg).Foreground(rgbStatus)
	r.drawText(0, hgt-1, w, StatusLine(h), style)

	if h.Over {
		msg := fmt.Sprintf(" GAME OVER - final score %d ", h.Score)
		x := max((w-len(msg))/2, 0)
		r.drawText(x, (hgt-1)/2, w, msg, tcell.StyleDefault.Background(rgbVehicle).Foreground(rgbStatus).Bold(true))
	}
	r.screen.Show()
}

// GameOver only latches the flag; the overlay is drawn with the next HUD.
func (r *Renderer) GameOver(finalScore int) {
	r.mu.Lock()
	r.over = true
	r.mu.Unlock()
}

// Over reports whether the last HUD showed a finished session.
func (r *Renderer) Over() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.over
}

func (r *Renderer) drawText(x, y, width int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		if col >= width {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
	// статус тянем до правого края
	if x == 0 {
		for ; col < width; col++ {
			r.screen.SetContent(col, y, ' ', nil, style)
		}
	}
}

