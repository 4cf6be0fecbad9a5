// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthBarWidth  = 160
	HealthBarHeight = 12
)

var (
	healthHighColor = color.RGBA{0, 220, 0, 255}
	healthMidColor  = color.RGBA{255, 200, 0, 255}
	healthLowColor  = color.RGBA{230, 30, 30, 255}
	healthBackColor = color.RGBA{40, 40, 40, 200}
)

// PlayerHealthIndicator отображает здоровье машины полоской.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// HealthColor — зелёный больше половины, жёлтый до четверти, дальше красный.
func HealthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.5:
		return healthHighColor
	case fraction > 0.25:
		return healthMidColor
	default:
		return healthLowColor
	}
}

// Draw рисует полоску; fraction уже обрезана до [0, 1].
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, fraction float64) {
	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, healthBackColor, false)
	vector.DrawFilledRect(screen, i.X, i.Y, float32(fraction*HealthBarWidth), HealthBarHeight, HealthColor(fraction), false)
	vector.StrokeRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, 1, color.White, false)
}
