//go:build !tinygo

package platform

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"m401-bsp/errcode"
	"m401-bsp/gpio"
)

// Periph maps board pins onto host GPIO lines through periph.io, e.g. to
// exercise the board layer against a header on a Linux SBC. Drive speed
// and output topology are not settable through periph and are ignored.
type Periph struct {
	mu     sync.Mutex
	lines  map[gpio.ID]pgpio.PinIO
	driven map[gpio.ID]gpio.Level // periph exposes no output latch readback
	log    *zap.Logger
}

var _ gpio.Driver = (*Periph)(nil)

// NewPeriph wraps already-resolved periph pins.
func NewPeriph(lines map[gpio.ID]pgpio.PinIO, log *zap.Logger) *Periph {
	if log == nil {
		log = zap.NewNop()
	}
	m := make(map[gpio.ID]pgpio.PinIO, len(lines))
	for id, p := range lines {
		m[id] = p
	}
	return &Periph{lines: m, driven: make(map[gpio.ID]gpio.Level), log: log}
}

// OpenPeriph initialises the periph host drivers and resolves each board
// pin to the named host line (e.g. "GPIO17").
func OpenPeriph(names map[gpio.ID]string, log *zap.Logger) (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	lines := make(map[gpio.ID]pgpio.PinIO, len(names))
	for id, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, errcode.Wrap(errcode.UnknownPin, "platform.OpenPeriph", id.String()+"="+name)
		}
		lines[id] = p
	}
	return NewPeriph(lines, log), nil
}

func toPeriphPull(p gpio.Pull) pgpio.Pull {
	switch p {
	case gpio.PullUp:
		return pgpio.PullUp
	case gpio.PullDown:
		return pgpio.PullDown
	default:
		return pgpio.Float
	}
}

func (d *Periph) pin(id gpio.ID) pgpio.PinIO {
	d.mu.Lock()
	p := d.lines[id]
	d.mu.Unlock()
	if p == nil {
		d.log.Warn("pin not mapped to a host line", zap.Stringer("pin", id))
	}
	return p
}

func (d *Periph) ConfigureOutput(id gpio.ID, args gpio.OutputArgs) {
	p := d.pin(id)
	if p == nil {
		return
	}
	d.latch(id, args.Level)
	if err := p.Out(pgpio.Level(args.Level)); err != nil {
		d.log.Error("configure output", zap.Stringer("pin", id), zap.String("line", p.Name()), zap.Error(err))
		return
	}
	d.log.Debug("configured output",
		zap.Stringer("pin", id),
		zap.String("line", p.Name()),
		zap.Stringer("level", args.Level),
		zap.Stringer("speed", args.Speed),
		zap.Stringer("type", args.OutputType),
	)
}

func (d *Periph) ConfigureInput(id gpio.ID, pull gpio.Pull) {
	p := d.pin(id)
	if p == nil {
		return
	}
	if err := p.In(toPeriphPull(pull), pgpio.NoEdge); err != nil {
		d.log.Error("configure input", zap.Stringer("pin", id), zap.String("line", p.Name()), zap.Error(err))
		return
	}
	d.log.Debug("configured input", zap.Stringer("pin", id), zap.String("line", p.Name()), zap.Stringer("pull", pull))
}

func (d *Periph) Set(id gpio.ID, level gpio.Level) {
	p := d.pin(id)
	if p == nil {
		return
	}
	d.latch(id, level)
	if err := p.Out(pgpio.Level(level)); err != nil {
		d.log.Error("set level", zap.Stringer("pin", id), zap.Error(err))
	}
}

func (d *Periph) Get(id gpio.ID) gpio.Level {
	p := d.pin(id)
	if p == nil {
		return gpio.Low
	}
	return gpio.Level(p.Read())
}

func (d *Periph) Driven(id gpio.ID) gpio.Level {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.driven[id]
}

func (d *Periph) latch(id gpio.ID, l gpio.Level) {
	d.mu.Lock()
	d.driven[id] = l
	d.mu.Unlock()
}
