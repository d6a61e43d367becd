package board

import (
	"m401-bsp/critical"
	"m401-bsp/gpio"
)

// The buttons short to ground and rely on the internal pull-up.
const buttonPull = gpio.PullUp

// PushButton reports the logical pressed state, independent of wiring
// polarity.
type PushButton interface {
	IsPushed() bool
}

// InputSource is the one primitive a button type has to provide.
type InputSource interface {
	Input() gpio.InputPin
}

// AsPushButton gives any active-low input source the PushButton behaviour.
func AsPushButton(s InputSource) PushButton { return buttonOf{s} }

type buttonOf struct{ InputSource }

func (b buttonOf) IsPushed() bool { return pushed(b) }

// Pressed pulls the line low.
func pushed(s InputSource) bool { return s.Input().Level() == gpio.Low }

// GPIOButton is an active-low push-button on pin P.
type GPIOButton[P gpio.Pin] struct {
	gpio *gpio.Input[P]
}

var _ PushButton = (*GPIOButton[gpio.A0])(nil)

// NewGPIOButton claims pin as a pulled-up input.
func NewGPIOButton[P gpio.Pin](pin P, cs *critical.Token) (*GPIOButton[P], error) {
	in, err := gpio.NewInput(pin, buttonPull, cs)
	if err != nil {
		return nil, err
	}
	return &GPIOButton[P]{gpio: in}, nil
}

// Input exposes the pin, e.g. for routing it to an EXTI line.
func (b *GPIOButton[P]) Input() gpio.InputPin { return b.gpio }

func (b *GPIOButton[P]) IsPushed() bool { return pushed(b) }

// Free releases the pin without reconfiguring it.
func (b *GPIOButton[P]) Free() P { return b.gpio.Free() }

// ------------------------
// Board buttons
// ------------------------

// Pb1 is push-button 1.
type Pb1 struct{ GPIOButton[gpio.A0] }

// Pb2 is push-button 2.
type Pb2 struct{ GPIOButton[gpio.A1] }

// Pb3 is push-button 3.
type Pb3 struct{ GPIOButton[gpio.A4] }

func NewPb1(a0 gpio.A0, cs *critical.Token) (*Pb1, error) {
	b, err := NewGPIOButton(a0, cs)
	if err != nil {
		return nil, err
	}
	return &Pb1{*b}, nil
}

func NewPb2(a1 gpio.A1, cs *critical.Token) (*Pb2, error) {
	b, err := NewGPIOButton(a1, cs)
	if err != nil {
		return nil, err
	}
	return &Pb2{*b}, nil
}

func NewPb3(a4 gpio.A4, cs *critical.Token) (*Pb3, error) {
	b, err := NewGPIOButton(a4, cs)
	if err != nil {
		return nil, err
	}
	return &Pb3{*b}, nil
}

// StealPb1 returns push-button 1 without claiming or configuring A0.
//
// Unsafe: the caller must have exclusive access to the pin and must have
// configured it as a pulled-up input. Singleton checks are bypassed.
func StealPb1() *Pb1 { return &Pb1{GPIOButton[gpio.A0]{gpio: gpio.StealInput[gpio.A0]()}} }

// StealPb2 is StealPb1 for A1; the same caller obligations apply.
func StealPb2() *Pb2 { return &Pb2{GPIOButton[gpio.A1]{gpio: gpio.StealInput[gpio.A1]()}} }

// StealPb3 is StealPb1 for A4; the same caller obligations apply.
func StealPb3() *Pb3 { return &Pb3{GPIOButton[gpio.A4]{gpio: gpio.StealInput[gpio.A4]()}} }
