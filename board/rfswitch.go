package board

import (
	"m401-bsp/critical"
	"m401-bsp/errcode"
	"m401-bsp/gpio"
)

// RfMode is the RF front-end switch position.
type RfMode uint8

const (
	RfRx   RfMode = iota // receive
	RfTxLP               // transmit, low-power PA
	RfTxHP               // transmit, high-power PA
)

func (m RfMode) String() string {
	switch m {
	case RfRx:
		return "rx"
	case RfTxLP:
		return "tx_lp"
	case RfTxHP:
		return "tx_hp"
	}
	return "invalid"
}

// ParseRfMode accepts the names returned by RfMode.String.
func ParseRfMode(s string) (RfMode, error) {
	for m := RfRx; m <= RfTxHP; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, errcode.InvalidParams
}

// FE_CTRL1 / FE_CTRL3 levels per mode.
//
//	        CTRL1  CTRL3
//	RX      low    high
//	TX_LP   low    low
//	TX_HP   high   low
func (m RfMode) levels() (ctrl1, ctrl3 gpio.Level, ok bool) {
	switch m {
	case RfRx:
		return gpio.Low, gpio.High, true
	case RfTxLP:
		return gpio.Low, gpio.Low, true
	case RfTxHP:
		return gpio.High, gpio.Low, true
	}
	return gpio.Low, gpio.Low, false
}

// PowerOnMode is the position NewRfSwitch leaves the switch in.
const PowerOnMode = RfRx

// RfSwitch owns the two RF front-end control lines. Every mode change
// writes both lines; there is no public way to set them independently.
type RfSwitch struct {
	ctrl1 *gpio.Output[gpio.B0]
	ctrl3 *gpio.Output[gpio.A8]
}

// NewRfSwitch claims FE_CTRL1 (B0) and FE_CTRL3 (A8) and drives them to
// PowerOnMode. Either both lines are claimed or neither is.
func NewRfSwitch(b0 gpio.B0, a8 gpio.A8, cs *critical.Token) (*RfSwitch, error) {
	l1, l3, _ := PowerOnMode.levels()
	args := gpio.OutputArgs{
		Speed:      gpio.SpeedFast,
		OutputType: gpio.PushPull,
		Pull:       gpio.PullNone,
	}

	args.Level = l1
	ctrl1, err := gpio.NewOutput(b0, &args, cs)
	if err != nil {
		return nil, err
	}
	args.Level = l3
	ctrl3, err := gpio.NewOutput(a8, &args, cs)
	if err != nil {
		ctrl1.Free()
		return nil, err
	}
	return &RfSwitch{ctrl1: ctrl1, ctrl3: ctrl3}, nil
}

// StealRfSwitch returns the RF switch without claiming or configuring its
// pins.
//
// Unsafe: the caller must have exclusive access to B0 and A8 and must have
// set them up as outputs. Singleton checks are bypassed.
func StealRfSwitch() *RfSwitch {
	return &RfSwitch{
		ctrl1: gpio.StealOutput[gpio.B0](),
		ctrl3: gpio.StealOutput[gpio.A8](),
	}
}

// SetRx sets the switch to receive.
func (s *RfSwitch) SetRx() { s.drive(RfRx) }

// SetTxLP sets the switch to low-power transmit.
func (s *RfSwitch) SetTxLP() { s.drive(RfTxLP) }

// SetTxHP sets the switch to high-power transmit.
func (s *RfSwitch) SetTxHP() { s.drive(RfTxHP) }

// SetMode is the table-driven form of SetRx/SetTxLP/SetTxHP.
func (s *RfSwitch) SetMode(m RfMode) error {
	if _, _, ok := m.levels(); !ok {
		return errcode.InvalidParams
	}
	s.drive(m)
	return nil
}

func (s *RfSwitch) drive(m RfMode) {
	l1, l3, _ := m.levels()
	s.ctrl1.SetLevel(l1)
	s.ctrl3.SetLevel(l3)
}

// Mode decodes the current line levels. ok is false when the lines hold a
// combination that is not a mode, which can only happen on a stolen switch.
func (s *RfSwitch) Mode() (m RfMode, ok bool) {
	l1, l3 := s.ctrl1.Level(), s.ctrl3.Level()
	for m = RfRx; m <= RfTxHP; m++ {
		if w1, w3, _ := m.levels(); w1 == l1 && w3 == l3 {
			return m, true
		}
	}
	return 0, false
}

// Free releases both lines, leaving the switch in its current position.
func (s *RfSwitch) Free() (gpio.B0, gpio.A8) {
	return s.ctrl1.Free(), s.ctrl3.Free()
}
