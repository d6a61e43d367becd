package board

import (
	"m401-bsp/critical"
	"m401-bsp/gpio"
)

var ledArgs = gpio.OutputArgs{
	Speed:      gpio.SpeedFast,
	Level:      gpio.Low,
	OutputType: gpio.PushPull,
	Pull:       gpio.PullNone,
}

// Led is what callers need to drive an LED, whatever pin backs it.
type Led interface {
	SetOn()
	SetOff()
	Toggle()
}

// OutputSource is the one primitive an LED type has to provide.
type OutputSource interface {
	Output() gpio.OutputPin
}

// AsLed gives any output source the Led behaviour.
func AsLed(s OutputSource) Led { return ledOf{s} }

type ledOf struct{ OutputSource }

func (l ledOf) SetOn()  { ledOn(l) }
func (l ledOf) SetOff() { ledOff(l) }
func (l ledOf) Toggle() { ledToggle(l) }

func ledOn(s OutputSource)     { s.Output().SetHigh() }
func ledOff(s OutputSource)    { s.Output().SetLow() }
func ledToggle(s OutputSource) { s.Output().Toggle() }

// GPIOLed is an active-high LED on pin P. The named LEDs embed it.
type GPIOLed[P gpio.Pin] struct {
	gpio *gpio.Output[P]
}

var _ Led = (*GPIOLed[gpio.B3])(nil)

// NewGPIOLed claims pin for an LED and switches it off.
func NewGPIOLed[P gpio.Pin](pin P, cs *critical.Token) (*GPIOLed[P], error) {
	o, err := gpio.NewOutput(pin, &ledArgs, cs)
	if err != nil {
		return nil, err
	}
	return &GPIOLed[P]{gpio: o}, nil
}

func (l *GPIOLed[P]) Output() gpio.OutputPin { return l.gpio }

func (l *GPIOLed[P]) SetOn()  { ledOn(l) }
func (l *GPIOLed[P]) SetOff() { ledOff(l) }
func (l *GPIOLed[P]) Toggle() { ledToggle(l) }

// IsOn reads back the drive level.
func (l *GPIOLed[P]) IsOn() bool { return l.gpio.Level() == gpio.High }

// Free releases the pin. The LED stays in its current state.
func (l *GPIOLed[P]) Free() P { return l.gpio.Free() }

// ------------------------
// Board LEDs
// ------------------------

// Red LED, marked LED3 on the PCB.
type Red struct{ GPIOLed[gpio.B3] }

// Green LED, marked LED2 on the PCB.
type Green struct{ GPIOLed[gpio.B4] }

// Blue LED, marked LED1 on the PCB.
type Blue struct{ GPIOLed[gpio.B5] }

func NewRed(b3 gpio.B3, cs *critical.Token) (*Red, error) {
	l, err := NewGPIOLed(b3, cs)
	if err != nil {
		return nil, err
	}
	return &Red{*l}, nil
}

func NewGreen(b4 gpio.B4, cs *critical.Token) (*Green, error) {
	l, err := NewGPIOLed(b4, cs)
	if err != nil {
		return nil, err
	}
	return &Green{*l}, nil
}

func NewBlue(b5 gpio.B5, cs *critical.Token) (*Blue, error) {
	l, err := NewGPIOLed(b5, cs)
	if err != nil {
		return nil, err
	}
	return &Blue{*l}, nil
}

// StealRed returns the red LED without claiming or configuring its pin.
//
// Unsafe: the caller must have exclusive access to B3, and must have set it
// up as an output. Singleton checks are bypassed.
func StealRed() *Red { return &Red{GPIOLed[gpio.B3]{gpio: gpio.StealOutput[gpio.B3]()}} }

// StealGreen is StealRed for B4; the same caller obligations apply.
func StealGreen() *Green { return &Green{GPIOLed[gpio.B4]{gpio: gpio.StealOutput[gpio.B4]()}} }

// StealBlue is StealRed for B5; the same caller obligations apply.
func StealBlue() *Blue { return &Blue{GPIOLed[gpio.B5]{gpio: gpio.StealOutput[gpio.B5]()}} }
