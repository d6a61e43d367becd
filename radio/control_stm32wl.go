//go:build tinygo && stm32wlx

package radio

import (
	"tinygo.org/x/drivers/sx126x"

	"m401-bsp/board"
)

// Control implements sx126x.RadioController for the on-chip radio, routing
// front-end switch requests to the board's RfSwitch. NSS, busy and IRQ
// handling come from the driver's STM32 radio control.
type Control struct {
	sx126x.STM32RadioControl
	rf *board.RfSwitch
}

// Ensure compile-time conformance with sx126x.RadioController.
var _ sx126x.RadioController = (*Control)(nil)

// New takes ownership of rf for the lifetime of the radio.
func New(rf *board.RfSwitch) *Control {
	return &Control{rf: rf}
}

// Init is a no-op: the switch lines were configured when rf was claimed.
func (c *Control) Init() error { return nil }

func (c *Control) SetRfSwitchMode(mode int) error {
	switch mode {
	case sx126x.RFSWITCH_RX:
		c.rf.SetRx()
	case sx126x.RFSWITCH_TX_LP:
		c.rf.SetTxLP()
	case sx126x.RFSWITCH_TX_HP:
		c.rf.SetTxHP()
	default:
		return errUnknownMode
	}
	return nil
}

// Switch returns the RF switch back to the caller, e.g. to free it once
// the radio is shut down.
func (c *Control) Switch() *board.RfSwitch { return c.rf }
