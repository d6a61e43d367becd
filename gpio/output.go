package gpio

import (
	"m401-bsp/critical"
	"m401-bsp/errcode"
)

// OutputPin is the level-writing surface shared by all owned outputs.
type OutputPin interface {
	ID() ID
	SetHigh()
	SetLow()
	SetLevel(Level)
	Toggle()
	Level() Level
}

// Output is an owned GPIO configured as a digital output.
type Output[P Pin] struct {
	pin    P
	drv    Driver
	stolen bool
	freed  bool
}

var _ OutputPin = (*Output[B3])(nil)

// NewOutput claims pin and configures it from args. The initial level is
// driven before NewOutput returns.
func NewOutput[P Pin](pin P, args *OutputArgs, cs *critical.Token) (*Output[P], error) {
	const op = "gpio.NewOutput"
	if err := args.validate(); err != nil {
		return nil, errcode.Wrap(errcode.Of(err), op, pin.ID().String())
	}
	d := driver
	if d == nil {
		return nil, errcode.Wrap(errcode.NoDriver, op, pin.ID().String())
	}
	if err := claim(op, pin.ID(), cs); err != nil {
		return nil, err
	}
	d.ConfigureOutput(pin.ID(), *args)
	return &Output[P]{pin: pin, drv: d}, nil
}

// StealOutput returns an output handle for P without claiming it and
// without touching the hardware.
//
// Unsafe: the caller must guarantee exclusive access to the pin, since the
// claim registry is bypassed. The pin keeps whatever configuration it
// currently has; it is the caller's job to have set it up as an output.
func StealOutput[P Pin]() *Output[P] {
	var pin P
	return &Output[P]{pin: pin, drv: mustDriver(), stolen: true}
}

// ID returns the pin identity.
func (o *Output[P]) ID() ID { return o.pin.ID() }

func (o *Output[P]) SetHigh() { o.SetLevel(High) }

func (o *Output[P]) SetLow() { o.SetLevel(Low) }

func (o *Output[P]) SetLevel(l Level) {
	o.live()
	o.drv.Set(o.pin.ID(), l)
}

// Toggle inverts the driven level. It works from the output data register,
// not the line, so an open-drain output held low still alternates.
func (o *Output[P]) Toggle() {
	o.live()
	id := o.pin.ID()
	o.drv.Set(id, !o.drv.Driven(id))
}

// Level reads the level present on the pin. For a push-pull output this is
// the driven level.
func (o *Output[P]) Level() Level {
	o.live()
	return o.drv.Get(o.pin.ID())
}

// Free releases the claim and returns the pin identity. No register is
// written: the pin keeps driving its current level until the next owner
// reconfigures it. The Output must not be used afterwards.
func (o *Output[P]) Free() P {
	o.live()
	o.freed = true
	if !o.stolen {
		release(o.pin.ID())
	}
	return o.pin
}

func (o *Output[P]) live() {
	if o.freed {
		panic("gpio: output " + o.pin.ID().String() + " used after Free")
	}
}
