//go:build tinygo && stm32wlx

// m401-demo is a small firmware for the m401 module: each push-button
// lights its LED while held, and a press of PB3 steps the RF front-end
// switch through rx, tx_lp and tx_hp via the sub-GHz radio controller.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/sx126x"

	"m401-bsp/board"
	"m401-bsp/critical"
	"m401-bsp/gpio"
	"m401-bsp/platform"
	"m401-bsp/radio"
)

const pollEvery = 20 * time.Millisecond

var rfCycle = []int{sx126x.RFSWITCH_RX, sx126x.RFSWITCH_TX_LP, sx126x.RFSWITCH_TX_HP}

func main() {
	// Give the debug console a moment before printing.
	time.Sleep(2 * time.Second)
	println("boot")

	platform.Init()
	pins, err := gpio.Take()
	if err != nil {
		panic(err.Error())
	}
	b, err := critical.Run(func(cs *critical.Token) (*board.Board, error) {
		return board.New(pins, cs)
	})
	if err != nil {
		panic("board: " + err.Error())
	}

	ctl := radio.New(b.Rf)
	dev := sx126x.New(machine.SPI3)
	dev.SetDeviceType(sx126x.DEVICE_TYPE_SX1262)
	if err := dev.SetRadioController(ctl); err != nil {
		println("radio controller:", err.Error())
	}
	if !dev.DetectDevice() {
		println("sub-GHz radio not detected")
	}

	leds := b.Leds()
	buttons := b.Buttons()
	rf, wasPushed := 0, false

	tick := time.NewTicker(pollEvery)
	defer tick.Stop()
	for range tick.C {
		for i, btn := range buttons {
			if btn.IsPushed() {
				leds[i].SetOn()
			} else {
				leds[i].SetOff()
			}
		}

		pushed := b.Pb3.IsPushed()
		if pushed && !wasPushed {
			rf = (rf + 1) % len(rfCycle)
			if err := ctl.SetRfSwitchMode(rfCycle[rf]); err != nil {
				println("rf switch:", err.Error())
			} else if m, ok := b.Rf.Mode(); ok {
				println("rf mode", m.String())
			}
		}
		wasPushed = pushed
	}
}
