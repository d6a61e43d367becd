package board

import (
	"testing"

	"m401-bsp/critical"
	"m401-bsp/errcode"
	"m401-bsp/gpio"
)

func newRf(t *testing.T) *RfSwitch {
	t.Helper()
	rf := mustRun(t, func(cs *critical.Token) (*RfSwitch, error) {
		return NewRfSwitch(gpio.B0{}, gpio.A8{}, cs)
	})
	t.Cleanup(func() { rf.Free() })
	return rf
}

func TestRfSwitchPowerOnMode(t *testing.T) {
	s := withSim(t)
	rf := newRf(t)
	if m, ok := rf.Mode(); !ok || m != PowerOnMode {
		t.Fatalf("power-on mode = %v/%v, want %v", m, ok, PowerOnMode)
	}
	if level(t, s, gpio.PB0) != gpio.Low || level(t, s, gpio.PA8) != gpio.High {
		t.Fatal("power-on levels should be the receive pair")
	}
}

func TestRfSwitchTransitions(t *testing.T) {
	s := withSim(t)
	rf := newRf(t)

	transitions := []struct {
		name         string
		set          func()
		mode         RfMode
		ctrl1, ctrl3 gpio.Level
	}{
		{"rx", rf.SetRx, RfRx, gpio.Low, gpio.High},
		{"tx_lp", rf.SetTxLP, RfTxLP, gpio.Low, gpio.Low},
		{"tx_hp", rf.SetTxHP, RfTxHP, gpio.High, gpio.Low},
	}
	for _, start := range transitions {
		for _, tr := range transitions {
			t.Run(start.name+"->"+tr.name, func(t *testing.T) {
				start.set()
				tr.set()
				if got1, got3 := level(t, s, gpio.PB0), level(t, s, gpio.PA8); got1 != tr.ctrl1 || got3 != tr.ctrl3 {
					t.Fatalf("levels = (%v, %v), want (%v, %v)", got1, got3, tr.ctrl1, tr.ctrl3)
				}
				if m, ok := rf.Mode(); !ok || m != tr.mode {
					t.Fatalf("Mode() = %v/%v, want %v", m, ok, tr.mode)
				}
			})
		}
	}
}

func TestRfSwitchSetMode(t *testing.T) {
	withSim(t)
	rf := newRf(t)
	for _, m := range []RfMode{RfTxHP, RfRx, RfTxLP} {
		if err := rf.SetMode(m); err != nil {
			t.Fatalf("SetMode(%v): %v", m, err)
		}
		if got, _ := rf.Mode(); got != m {
			t.Fatalf("Mode() = %v after SetMode(%v)", got, m)
		}
	}
	if err := rf.SetMode(RfTxHP + 1); err != errcode.InvalidParams {
		t.Fatalf("invalid mode err = %v", err)
	}
	if got, _ := rf.Mode(); got != RfTxLP {
		t.Fatal("rejected SetMode must not change the lines")
	}
}

func TestRfSwitchClaimsBothOrNeither(t *testing.T) {
	withSim(t)
	ctrl3 := mustRun(t, func(cs *critical.Token) (*gpio.Output[gpio.A8], error) {
		return gpio.NewOutput(gpio.A8{}, &gpio.OutputArgs{}, cs)
	})
	_, err := critical.Run(func(cs *critical.Token) (*RfSwitch, error) {
		return NewRfSwitch(gpio.B0{}, gpio.A8{}, cs)
	})
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	if gpio.Claimed(gpio.PB0) {
		t.Fatal("B0 must be released when A8 cannot be claimed")
	}
	ctrl3.Free()
	newRf(t)
}

func TestRfSwitchStealAndUndefinedPair(t *testing.T) {
	s := withSim(t)
	s.ConfigureOutput(gpio.PB0, gpio.OutputArgs{Level: gpio.High})
	s.ConfigureOutput(gpio.PA8, gpio.OutputArgs{Level: gpio.High})
	before := s.Writes()

	rf := StealRfSwitch()
	if s.Writes() != before {
		t.Fatal("StealRfSwitch must not configure")
	}
	if _, ok := rf.Mode(); ok {
		t.Fatal("(high, high) is not a mode")
	}
	rf.SetTxLP()
	if m, ok := rf.Mode(); !ok || m != RfTxLP {
		t.Fatalf("Mode() = %v/%v", m, ok)
	}
	rf.Free()
}

func TestParseRfMode(t *testing.T) {
	for _, m := range []RfMode{RfRx, RfTxLP, RfTxHP} {
		got, err := ParseRfMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseRfMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseRfMode("tx"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
