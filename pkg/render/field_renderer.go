// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/interfaces"
	"go-car-shooter/internal/utils"
)

const (
	wheelLength   = 12
	wheelWidth    = 4
	glowExtra     = 3
	glowAlpha     = 0.35
	roadLineWidth = 2
)

// FieldRenderer draws a world snapshot. Static parts are rendered once into images.
type FieldRenderer struct {
	width, height int
	colors        FieldColors
	background    *ebiten.Image // фон и разметка, рисуются один раз
	car           *ebiten.Image
	target        *ebiten.Image
	rng           utils.Random // только для декоративных полос скорости
}

func NewFieldRenderer(field component.Field, spec component.VehicleSpec, colors FieldColors, rng utils.Random) *FieldRenderer {
	r := &FieldRenderer{
		width:  int(field.Width),
		height: int(field.Height),
		colors: colors,
		rng:    rng,
	}
	r.background = r.renderBackground()
	r.car = r.renderCar(spec)
	r.target = r.renderTarget()
	return r
}

// DefaultColors returns the arena palette from config.
func DefaultColors() FieldColors {
	return FieldColors{
		Background:   config.BackgroundColor,
		RoadLine:     config.RoadLineColor,
		Vehicle:      config.VehicleColor,
		Wheel:        config.WheelColor,
		Windshield:   config.WindshieldColor,
		Turret:       config.TurretColor,
		Projectile:   config.ProjectileColor,
		TargetOuter:  config.TargetOuterColor,
		TargetInner:  config.TargetInnerColor,
		TargetHealth: config.TargetHealthColor,
		SpeedLine:    config.SpeedLineColor,
	}
}

func (r *FieldRenderer) renderBackground() *ebiten.Image {
	img := ebiten.NewImage(r.width, r.height)
	img.Fill(r.colors.Background)
	cx := float64(r.width) / 2
	for _, s := range DashSegments(cx, 0, cx, float64(r.height), config.RoadDashLength, config.RoadDashLength) {
		vector.StrokeLine(img, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), roadLineWidth, r.colors.RoadLine, false)
	}
	return img
}

// renderCar draws the car facing +X with wheels sticking out on both sides.
func (r *FieldRenderer) renderCar(spec component.VehicleSpec) *ebiten.Image {
	w := float32(spec.Width)
	h := float32(spec.Height)
	img := ebiten.NewImage(int(w), int(h)+2*wheelWidth)

	for _, x := range []float32{6, w - 6 - wheelLength} {
		vector.DrawFilledRect(img, x, 0, wheelLength, wheelWidth, r.colors.Wheel, false)
		vector.DrawFilledRect(img, x, h+wheelWidth, wheelLength, wheelWidth, r.colors.Wheel, false)
	}
	vector.DrawFilledRect(img, 0, wheelWidth, w, h, r.colors.Vehicle, false)
	vector.StrokeRect(img, 0, wheelWidth, w, h, 1, DarkenColor(r.colors.Vehicle), false)
	// лобовое стекло ближе к носу
	vector.DrawFilledRect(img, w*0.62, wheelWidth+4, 8, h-8, r.colors.Windshield, false)

	cx, cy := w/2, float32(img.Bounds().Dy())/2
	vector.DrawFilledRect(img, cx-5, cy-10, 10, 20, r.colors.Turret, false)
	vector.StrokeLine(img, cx, cy, w-2, cy, 3, DarkenColor(r.colors.Turret), false)
	return img
}

func (r *FieldRenderer) renderTarget() *ebiten.Image {
	size := int(config.TargetSize)
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, config.TargetOuterRadius, r.colors.TargetOuter, true)
	vector.DrawFilledCircle(img, c, c, config.TargetMiddleRadius, r.colors.TargetInner, true)
	vector.DrawFilledCircle(img, c, c, config.TargetInnerRadius, r.colors.TargetOuter, true)
	return img
}

// Draw рисует снимок мира. Порядок: фон, снаряды, цели, машина, взрывы, полосы скорости.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap interfaces.Snapshot) {
	screen.DrawImage(r.background, nil)

	for _, p := range snap.Projectiles {
		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius+glowExtra), WithAlpha(r.colors.Projectile, glowAlpha), true)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), r.colors.Projectile, true)
	}

	for _, t := range snap.Targets {
		r.drawTarget(screen, t)
	}

	r.drawCar(screen, snap.Vehicle)

	for _, p := range snap.Effects {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), WithAlpha(p.Color, p.Opacity()), true)
	}

	for _, s := range SpeedLines(snap.Vehicle, r.rng) {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 1, r.colors.SpeedLine, true)
	}
}

func (r *FieldRenderer) drawTarget(screen *ebiten.Image, t component.Target) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-t.HalfSize(), -t.HalfSize())
	op.GeoM.Rotate(t.Heading)
	op.GeoM.Translate(t.X, t.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.target, op)

	// полоска здоровья над целью, не вращается
	left := float32(t.X - t.HalfSize())
	top := float32(t.Y - t.HalfSize() - 5)
	vector.DrawFilledRect(screen, left, top, float32(t.Size), 3, color.RGBA{0, 0, 0, 160}, false)
	vector.DrawFilledRect(screen, left, top, float32(HealthBarWidth(t)), 3, r.colors.TargetHealth, false)
}

func (r *FieldRenderer) drawCar(screen *ebiten.Image, v component.Vehicle) {
	b := r.car.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(v.Heading)
	op.GeoM.Translate(v.X, v.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.car, op)

	if v.Health.IsDead() {
		// подбитая машина темнеет
		vector.DrawFilledCircle(screen, float32(v.X), float32(v.Y), float32(v.HalfWidth()), color.RGBA{0, 0, 0, 120}, true)
	}
}
