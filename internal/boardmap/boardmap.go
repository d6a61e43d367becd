// Package boardmap loads the YAML file that tells host tools which driver
// to use and, for periph, which host GPIO line stands in for each board pin.
//
//	driver: periph
//	lines:
//	  led_red: GPIO17   # board line name
//	  B0: GPIO22        # or pin name
package boardmap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"m401-bsp/board"
	"m401-bsp/gpio"
)

const (
	DriverSim    = "sim"
	DriverPeriph = "periph"
)

// Map is the on-disk board map.
type Map struct {
	Driver string            `yaml:"driver"`
	Lines  map[string]string `yaml:"lines"`
}

// Default runs everything on the simulator.
func Default() *Map { return &Map{Driver: DriverSim} }

// Load reads and validates a board map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board map: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a board map.
func Parse(data []byte) (*Map, error) {
	m := Default()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse board map: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the driver name and that every line key resolves.
func (m *Map) Validate() error {
	switch m.Driver {
	case DriverSim:
	case DriverPeriph:
		if len(m.Lines) == 0 {
			return fmt.Errorf("driver %q needs a lines section", m.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q", m.Driver)
	}
	_, err := m.Resolve()
	return err
}

// Resolve returns the host line name per pin.
func (m *Map) Resolve() (map[gpio.ID]string, error) {
	out := make(map[gpio.ID]string, len(m.Lines))
	for key, line := range m.Lines {
		id, err := lookup(key)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, fmt.Errorf("line %q: empty host line name", key)
		}
		if prev, dup := out[id]; dup {
			return nil, fmt.Errorf("line %q: pin %v already mapped to %s", key, id, prev)
		}
		out[id] = line
	}
	return out, nil
}

func lookup(key string) (gpio.ID, error) {
	for _, w := range board.Wiring {
		if w.Name == key {
			return w.ID, nil
		}
	}
	id, err := gpio.ParseID(key)
	if err != nil {
		return 0, fmt.Errorf("line %q: not a board line or pin name: %w", key, err)
	}
	return id, nil
}
