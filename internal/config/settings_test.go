package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s != Default() {
		t.Errorf("expected defaults %+v, got %+v", Default(), s)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte(`
field:
  width: 1024
  height: 768
vehicle:
  maxSpeed: 10
seed: 42
log:
  level: debug
audio:
  enabled: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Field.Width != 1024 || s.Field.Height != 768 {
		t.Errorf("field = %+v, want 1024x768", s.Field)
	}
	if s.Vehicle.MaxSpeed != 10 {
		t.Errorf("max speed = %g, want 10", s.Vehicle.MaxSpeed)
	}
	if s.Vehicle.Acceleration != VehicleAcceleration {
		t.Errorf("acceleration should keep default, got %g", s.Vehicle.Acceleration)
	}
	if s.Seed != 42 {
		t.Errorf("seed = %d, want 42", s.Seed)
	}
	if s.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", s.Log.Level)
	}
	if s.Audio.Enabled {
		t.Error("audio should be disabled by file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CARSHOOTER_FIELD_WIDTH", "640")
	t.Setenv("CARSHOOTER_SEED", "7")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Field.Width != 640 {
		t.Errorf("field width = %g, want 640", s.Field.Width)
	}
	if s.Seed != 7 {
		t.Errorf("seed = %d, want 7", s.Seed)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidField(t *testing.T) {
	t.Setenv("CARSHOOTER_FIELD_HEIGHT", "0")
	_, err := Load("")
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"defaults", func(*Settings) {}, nil},
		{"zero width", func(s *Settings) { s.Field.Width = 0 }, ErrInvalidField},
		{"negative height", func(s *Settings) { s.Field.Height = -1 }, ErrInvalidField},
		{"field smaller than vehicle", func(s *Settings) { s.Field.Width, s.Field.Height = 20, 20 }, ErrInvalidField},
		{"field narrower than vehicle", func(s *Settings) { s.Field.Width = s.Vehicle.Width - 1 }, ErrInvalidField},
		{"field exactly vehicle size", func(s *Settings) { s.Field.Width, s.Field.Height = s.Vehicle.Width, s.Vehicle.Height }, nil},
		{"zero max speed", func(s *Settings) { s.Vehicle.MaxSpeed = 0 }, ErrInvalidVehicle},
		{"zero extent", func(s *Settings) { s.Vehicle.Height = 0 }, ErrInvalidVehicle},
		{"negative accel", func(s *Settings) { s.Vehicle.Acceleration = -0.1 }, ErrInvalidVehicle},
		{"zero health", func(s *Settings) { s.Vehicle.MaxHealth = 0 }, ErrInvalidVehicle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
