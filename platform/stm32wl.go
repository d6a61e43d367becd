//go:build tinygo && stm32wlx

package platform

import (
	"device/stm32"
	"machine"

	"m401-bsp/gpio"
)

// STM32WL drives the MCU GPIO ports. gpio.ID values use the same
// port*16+line numbering as machine.Pin.
type STM32WL struct{}

var _ gpio.Driver = STM32WL{}

// Init registers the STM32WL driver.
func Init() { Use(STM32WL{}) }

func port(id gpio.ID) *stm32.GPIO_Type {
	switch id.Port() {
	case gpio.PortA:
		return stm32.GPIOA
	case gpio.PortB:
		return stm32.GPIOB
	case gpio.PortC:
		return stm32.GPIOC
	default:
		return stm32.GPIOH
	}
}

func pupd(p gpio.Pull) uint32 {
	switch p {
	case gpio.PullUp:
		return 0b01
	case gpio.PullDown:
		return 0b10
	default:
		return 0b00
	}
}

func (STM32WL) ConfigureOutput(id gpio.ID, args gpio.OutputArgs) {
	p := machine.Pin(id)
	line := id.Line()
	regs := port(id)
	// Input first: Configure enables the port clock without driving the pin.
	// ODR and the electrical settings are then written before MODER
	// switches to output, so the pin never drives a stale level.
	p.Configure(machine.PinConfig{Mode: machine.PinInputFloating})
	setODR(regs, line, args.Level)
	regs.OTYPER.ReplaceBits(uint32(args.OutputType), 0b1, line)
	regs.OSPEEDR.ReplaceBits(uint32(args.Speed), 0b11, line*2)
	regs.PUPDR.ReplaceBits(pupd(args.Pull), 0b11, line*2)
	regs.MODER.ReplaceBits(0b01, 0b11, line*2)
}

// setODR writes one output data bit through BSRR.
func setODR(regs *stm32.GPIO_Type, line uint8, l gpio.Level) {
	if l {
		regs.BSRR.Set(1 << line)
	} else {
		regs.BSRR.Set(1 << (line + 16))
	}
}

func (STM32WL) ConfigureInput(id gpio.ID, pull gpio.Pull) {
	mode := machine.PinInputFloating
	switch pull {
	case gpio.PullUp:
		mode = machine.PinInputPullup
	case gpio.PullDown:
		mode = machine.PinInputPulldown
	}
	machine.Pin(id).Configure(machine.PinConfig{Mode: mode})
}

func (STM32WL) Set(id gpio.ID, level gpio.Level) { machine.Pin(id).Set(bool(level)) }

func (STM32WL) Get(id gpio.ID) gpio.Level { return gpio.Level(machine.Pin(id).Get()) }

func (STM32WL) Driven(id gpio.ID) gpio.Level {
	return port(id).ODR.Get()&(1<<id.Line()) != 0
}
