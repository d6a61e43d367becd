// Package board is the board support layer for the m401 STM32WL module:
// three LEDs, three push-buttons and the RF front-end switch, each owning
// its GPIO lines through package gpio.
package board

import (
	"m401-bsp/critical"
	"m401-bsp/gpio"
)

// Line describes one wired GPIO.
type Line struct {
	Name string
	ID   gpio.ID
	Role string
}

// Wiring lists every line the board layer owns.
var Wiring = []Line{
	{Name: "led_red", ID: gpio.PB3, Role: "LED3, active high"},
	{Name: "led_green", ID: gpio.PB4, Role: "LED2, active high"},
	{Name: "led_blue", ID: gpio.PB5, Role: "LED1, active high"},
	{Name: "pb1", ID: gpio.PA0, Role: "push-button 1, active low"},
	{Name: "pb2", ID: gpio.PA1, Role: "push-button 2, active low"},
	{Name: "pb3", ID: gpio.PA4, Role: "push-button 3, active low"},
	{Name: "fe_ctrl1", ID: gpio.PB0, Role: "RF switch control 1"},
	{Name: "fe_ctrl3", ID: gpio.PA8, Role: "RF switch control 3"},
}

// Board bundles every peripheral of the board layer.
type Board struct {
	Red   *Red
	Green *Green
	Blue  *Blue
	Pb1   *Pb1
	Pb2   *Pb2
	Pb3   *Pb3
	Rf    *RfSwitch
}

// New claims every board line from p. On failure, lines claimed so far are
// released again and the error of the failing claim is returned.
func New(p *gpio.Pins, cs *critical.Token) (_ *Board, err error) {
	b := &Board{}
	defer func() {
		if err != nil {
			b.release()
		}
	}()

	if b.Red, err = NewRed(p.B3, cs); err != nil {
		return nil, err
	}
	if b.Green, err = NewGreen(p.B4, cs); err != nil {
		return nil, err
	}
	if b.Blue, err = NewBlue(p.B5, cs); err != nil {
		return nil, err
	}
	if b.Pb1, err = NewPb1(p.A0, cs); err != nil {
		return nil, err
	}
	if b.Pb2, err = NewPb2(p.A1, cs); err != nil {
		return nil, err
	}
	if b.Pb3, err = NewPb3(p.A4, cs); err != nil {
		return nil, err
	}
	if b.Rf, err = NewRfSwitch(p.B0, p.A8, cs); err != nil {
		return nil, err
	}
	return b, nil
}

// release frees whatever has been claimed so far.
func (b *Board) release() {
	if b.Red != nil {
		b.Red.Free()
	}
	if b.Green != nil {
		b.Green.Free()
	}
	if b.Blue != nil {
		b.Blue.Free()
	}
	if b.Pb1 != nil {
		b.Pb1.Free()
	}
	if b.Pb2 != nil {
		b.Pb2.Free()
	}
	if b.Pb3 != nil {
		b.Pb3.Free()
	}
	if b.Rf != nil {
		b.Rf.Free()
	}
}

// Steal returns every board peripheral without claims or configuration.
//
// Unsafe: the same obligations as the individual Steal functions apply to
// every line in Wiring.
func Steal() *Board {
	return &Board{
		Red:   StealRed(),
		Green: StealGreen(),
		Blue:  StealBlue(),
		Pb1:   StealPb1(),
		Pb2:   StealPb2(),
		Pb3:   StealPb3(),
		Rf:    StealRfSwitch(),
	}
}

// Free releases every line, leaving the hardware as it is.
func (b *Board) Free() { b.release() }

// Leds returns the LEDs in PCB order (LED1, LED2, LED3).
func (b *Board) Leds() []Led { return []Led{b.Blue, b.Green, b.Red} }

// Buttons returns Pb1, Pb2, Pb3.
func (b *Board) Buttons() []PushButton { return []PushButton{b.Pb1, b.Pb2, b.Pb3} }
