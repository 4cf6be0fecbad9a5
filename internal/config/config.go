// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	TicksPerSecond = 60 // одна логическая итерация на кадр, ~16.7ms
	MaxDeltaTime   = 0.06

	VehicleWidth         = 60.0
	VehicleHeight        = 30.0
	VehicleMaxSpeed      = 8.0
	VehicleAcceleration  = 0.2
	VehicleDeceleration  = 0.1
	VehicleRotationSpeed = 0.05
	VehicleMaxHealth     = 100
	VehicleReverseFactor = 0.5  // задний ход ограничен половиной maxSpeed
	TurnRateFloor        = 0.5  // поворот на месте всё ещё возможен
	CollisionDamage      = 10

	MaxAmmo            = 30
	AmmoResupplyChance = 0.005
	AmmoResupplyAmount = 10

	ProjectileSpeed          = 15.0
	ProjectileRadius         = 4.0
	ProjectileLife           = 100
	ProjectileMomentumFactor = 0.5
	MuzzleOffset             = 10.0
	ProjectileCullMargin     = 50.0

	TargetSpawnChance  = 0.02
	TargetSize         = 40.0
	TargetHealth       = 3
	TargetMinSpeed     = 2.0
	TargetSpeedSpread  = 2.0
	TargetSpawnOffset  = 40.0
	TargetCullMargin   = 100.0
	TargetScore        = 100
	TargetOuterRadius  = 15.0
	TargetMiddleRadius = 10.0
	TargetInnerRadius  = 5.0

	BurstSize            = 20
	ParticleLife         = 30
	ParticleMaxSpeed     = 5.0
	ParticleMinRadius    = 2.0
	ParticleRadiusSpread = 3.0

	SpeedDisplayScale   = 10
	SpeedLinesThreshold = 5.0
	SpeedLinesCount     = 10

	RoadDashLength = 20.0
	HUDFontSize    = 18
	TitleFontSize  = 36
	HUDMarginX     = 16
	HUDLineHeight  = 24
)

var (
	BackgroundColor   = color.RGBA{13, 27, 42, 255}
	RoadLineColor     = color.RGBA{255, 255, 0, 255}
	VehicleColor      = color.RGBA{255, 0, 0, 255}
	WheelColor        = color.RGBA{51, 51, 51, 255}
	WindshieldColor   = color.RGBA{0, 170, 255, 255}
	TurretColor       = color.RGBA{102, 102, 102, 255}
	ProjectileColor   = color.RGBA{255, 255, 0, 255}
	TargetOuterColor  = color.RGBA{255, 68, 68, 255}
	TargetInnerColor  = color.RGBA{255, 255, 68, 255}
	TargetHealthColor = color.RGBA{0, 255, 0, 255}
	SpeedLineColor    = color.RGBA{255, 255, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 170}
	ExplosionPalette  = []color.RGBA{
		{255, 0, 0, 255},   // красный
		{255, 136, 0, 255}, // оранжевый
		{255, 255, 0, 255}, // жёлтый
	}
)
