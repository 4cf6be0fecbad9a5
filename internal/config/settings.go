package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrInvalidField   = errors.New("invalid field bounds")
	ErrInvalidVehicle = errors.New("invalid vehicle parameters")
)

const (
	configName = "car-shooter"
	envPrefix  = "CARSHOOTER"
)

// Settings holds everything that may be overridden from a config file or the environment.
// Gameplay rules stay in the const block.
type Settings struct {
	Field   FieldSettings   `mapstructure:"field"`
	Vehicle VehicleSettings `mapstructure:"vehicle"`
	Seed    int64           `mapstructure:"seed"`
	Log     LogSettings     `mapstructure:"log"`
	Audio   AudioSettings   `mapstructure:"audio"`
	Debug   DebugSettings   `mapstructure:"debug"`
}

type FieldSettings struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type VehicleSettings struct {
	Width         float64 `mapstructure:"width"`
	Height        float64 `mapstructure:"height"`
	MaxSpeed      float64 `mapstructure:"maxspeed"`
	Acceleration  float64 `mapstructure:"acceleration"`
	Deceleration  float64 `mapstructure:"deceleration"`
	RotationSpeed float64 `mapstructure:"rotationspeed"`
	MaxHealth     int     `mapstructure:"maxhealth"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type DebugSettings struct {
	Pprof string `mapstructure:"pprof"` // пусто = выключено
}

// Default returns the settings used when nothing is overridden.
func Default() Settings {
	return Settings{
		Field: FieldSettings{Width: ScreenWidth, Height: ScreenHeight},
		Vehicle: VehicleSettings{
			Width:         VehicleWidth,
			Height:        VehicleHeight,
			MaxSpeed:      VehicleMaxSpeed,
			Acceleration:  VehicleAcceleration,
			Deceleration:  VehicleDeceleration,
			RotationSpeed: VehicleRotationSpeed,
			MaxHealth:     VehicleMaxHealth,
		},
		Log:   LogSettings{Level: "info", File: "car-shooter.log"},
		Audio: AudioSettings{Enabled: true, Volume: 0.5},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("field.width", d.Field.Width)
	v.SetDefault("field.height", d.Field.Height)
	v.SetDefault("vehicle.width", d.Vehicle.Width)
	v.SetDefault("vehicle.height", d.Vehicle.Height)
	v.SetDefault("vehicle.maxSpeed", d.Vehicle.MaxSpeed)
	v.SetDefault("vehicle.acceleration", d.Vehicle.Acceleration)
	v.SetDefault("vehicle.deceleration", d.Vehicle.Deceleration)
	v.SetDefault("vehicle.rotationSpeed", d.Vehicle.RotationSpeed)
	v.SetDefault("vehicle.maxHealth", d.Vehicle.MaxHealth)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.volume", d.Audio.Volume)
	v.SetDefault("debug.pprof", d.Debug.Pprof)
}

// Load reads settings from path (or car-shooter.* in the working directory when path is empty)
// and from CARSHOOTER_* environment variables. A missing default config file is not an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidField, s.Field.Width, s.Field.Height)
	}
	vs := s.Vehicle
	// машина должна помещаться в поле, иначе Clamp вытолкнет её за границу
	if vs.Width > s.Field.Width || vs.Height > s.Field.Height {
		return fmt.Errorf("%w: %gx%g is smaller than vehicle %gx%g", ErrInvalidField, s.Field.Width, s.Field.Height, vs.Width, vs.Height)
	}
	switch {
	case vs.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %g", ErrInvalidVehicle, vs.MaxSpeed)
	case vs.Width <= 0 || vs.Height <= 0:
		return fmt.Errorf("%w: extent %gx%g", ErrInvalidVehicle, vs.Width, vs.Height)
	case vs.Acceleration < 0 || vs.Deceleration < 0 || vs.RotationSpeed < 0:
		return fmt.Errorf("%w: negative rate", ErrInvalidVehicle)
	case vs.MaxHealth <= 0:
		return fmt.Errorf("%w: max health %d", ErrInvalidVehicle, vs.MaxHealth)
	}
	return nil
}
