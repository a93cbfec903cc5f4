package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Unit kinds understood by the player.
const (
	KindBar = "bar"
	KindFib = "fib"
)

// MaxFibTerm bounds the n of fib units. Terms are computed recursively inside a
// clock tick, so large values would stall every other unit.
const MaxFibTerm = 30

// Script describes the units of a timeline in the order they are added.
type Script struct {
	Units []UnitSpec `yaml:"units"`
}

// UnitSpec is one unit entry of a script as written in YAML.
type UnitSpec struct {
	ID       string `yaml:"id"`
	At       string `yaml:"at"`
	Duration string `yaml:"duration"`
	Kind     string `yaml:"kind"`
	N        int    `yaml:"n"`
}

// ScheduledUnit is a validated unit entry.
type ScheduledUnit struct {
	ID       string
	At       time.Duration
	HasAt    bool // false means the unit chains after the previous ones
	Duration time.Duration
	Kind     string
	N        int
}

// LoadScript reads and validates a YAML timeline script from fs.
func LoadScript(fs afero.Fs, path string) ([]ScheduledUnit, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	return ParseScript(data)
}

// ParseScript decodes and validates a YAML timeline script.
func ParseScript(data []byte) ([]ScheduledUnit, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	return s.Resolve()
}

// Resolve validates the script and converts it to scheduled units. Entries without
// an id get a generated one.
func (s *Script) Resolve() ([]ScheduledUnit, error) {
	if len(s.Units) == 0 {
		return nil, ErrNoUnits
	}

	seen := make(map[string]bool, len(s.Units))
	units := make([]ScheduledUnit, 0, len(s.Units))

	for i, spec := range s.Units {
		u := ScheduledUnit{
			ID:   spec.ID,
			Kind: strings.ToLower(spec.Kind),
			N:    spec.N,
		}

		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("unit %d: %w: %s", i, ErrDuplicateID, u.ID)
		}
		seen[u.ID] = true

		switch u.Kind {
		case "":
			u.Kind = KindBar
		case KindBar, KindFib:
		default:
			return nil, fmt.Errorf("unit %s: %w: %s", u.ID, ErrUnknownKind, spec.Kind)
		}

		if u.Kind == KindFib && (u.N < 0 || u.N > MaxFibTerm) {
			return nil, fmt.Errorf("unit %s: %w: n=%d, want 0..%d", u.ID, ErrTermOutOfRange, u.N, MaxFibTerm)
		}

		d, err := time.ParseDuration(spec.Duration)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("unit %s: %w: duration %q", u.ID, ErrInvalidDuration, spec.Duration)
		}
		u.Duration = d

		if spec.At != "" {
			at, err := time.ParseDuration(spec.At)
			if err != nil {
				return nil, fmt.Errorf("unit %s: %w: at %q", u.ID, ErrInvalidDuration, spec.At)
			}
			u.At = at
			u.HasAt = true
		}

		units = append(units, u)
	}

	return units, nil
}
