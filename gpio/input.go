package gpio

import (
	"m401-bsp/critical"
	"m401-bsp/errcode"
)

// InputPin is the read surface shared by all owned inputs.
type InputPin interface {
	ID() ID
	Level() Level
}

// Input is an owned GPIO configured as a digital input.
type Input[P Pin] struct {
	pin    P
	drv    Driver
	stolen bool
	freed  bool
}

var _ InputPin = (*Input[A0])(nil)

// NewInput claims pin and configures it as an input with the given pull.
func NewInput[P Pin](pin P, pull Pull, cs *critical.Token) (*Input[P], error) {
	const op = "gpio.NewInput"
	if pull > PullDown {
		return nil, errcode.Wrap(errcode.InvalidParams, op, pin.ID().String())
	}
	d := driver
	if d == nil {
		return nil, errcode.Wrap(errcode.NoDriver, op, pin.ID().String())
	}
	if err := claim(op, pin.ID(), cs); err != nil {
		return nil, err
	}
	d.ConfigureInput(pin.ID(), pull)
	return &Input[P]{pin: pin, drv: d}, nil
}

// StealInput returns an input handle for P without claiming it and without
// touching the hardware.
//
// Unsafe: the caller must guarantee exclusive access to the pin and is
// responsible for its configuration.
func StealInput[P Pin]() *Input[P] {
	var pin P
	return &Input[P]{pin: pin, drv: mustDriver(), stolen: true}
}

func (in *Input[P]) ID() ID { return in.pin.ID() }

// Level reads the pin.
func (in *Input[P]) Level() Level {
	if in.freed {
		panic("gpio: input " + in.pin.ID().String() + " used after Free")
	}
	return in.drv.Get(in.pin.ID())
}

// Free releases the claim and returns the pin identity without
// reconfiguring the pin.
func (in *Input[P]) Free() P {
	if in.freed {
		panic("gpio: input " + in.pin.ID().String() + " freed twice")
	}
	in.freed = true
	if !in.stolen {
		release(in.pin.ID())
	}
	return in.pin
}
