package board

import (
	"testing"

	"m401-bsp/critical"
	"m401-bsp/errcode"
	"m401-bsp/gpio"
)

func TestBoardNewAndFree(t *testing.T) {
	s := withSim(t)
	b := mustRun(t, func(cs *critical.Token) (*Board, error) { return New(gpio.StealPins(), cs) })

	for _, w := range Wiring {
		if !gpio.Claimed(w.ID) {
			t.Fatalf("%s (%v) not claimed", w.Name, w.ID)
		}
	}
	for _, l := range b.Leds() {
		l.SetOn()
	}
	s.Press(gpio.PA1)
	pushed := 0
	for _, pb := range b.Buttons() {
		if pb.IsPushed() {
			pushed++
		}
	}
	if pushed != 1 {
		t.Fatalf("pushed = %d, want 1", pushed)
	}

	b.Free()
	for _, w := range Wiring {
		if gpio.Claimed(w.ID) {
			t.Fatalf("%s still claimed after Free", w.Name)
		}
	}
}

func TestBoardNewRollsBack(t *testing.T) {
	withSim(t)
	blocker := mustRun(t, func(cs *critical.Token) (*gpio.Input[gpio.A4], error) {
		return gpio.NewInput(gpio.A4{}, gpio.PullNone, cs)
	})
	defer blocker.Free()

	_, err := critical.Run(func(cs *critical.Token) (*Board, error) { return New(gpio.StealPins(), cs) })
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	for _, w := range Wiring {
		if w.ID != gpio.PA4 && gpio.Claimed(w.ID) {
			t.Fatalf("%s left claimed after failed New", w.Name)
		}
	}
}

func TestBoardStealWritesNothing(t *testing.T) {
	s := withSim(t)
	before := s.Writes()
	b := Steal()
	if s.Writes() != before {
		t.Fatalf("Steal wrote %d times", s.Writes()-before)
	}
	for _, w := range Wiring {
		if gpio.Claimed(w.ID) {
			t.Fatalf("Steal claimed %s", w.Name)
		}
	}
	b.Free()
	if s.Writes() != before {
		t.Fatal("freeing a stolen board must not touch the hardware")
	}
}

// A fault handler stealing the board after the application configured it
// sees the hardware as it was left and can still drive it.
func TestBoardStealAfterPreviousOwner(t *testing.T) {
	s := withSim(t)
	prev := mustRun(t, func(cs *critical.Token) (*Board, error) { return New(gpio.StealPins(), cs) })
	prev.Red.SetOn()
	prev.Rf.SetTxLP()
	prev.Free()

	before := s.Writes()
	b := Steal()
	if s.Writes() != before {
		t.Fatal("Steal must not configure")
	}
	if !b.Red.IsOn() {
		t.Fatal("stolen red LED should read the level left by the previous owner")
	}
	if m, ok := b.Rf.Mode(); !ok || m != RfTxLP {
		t.Fatalf("stolen RF switch Mode() = %v/%v, want tx_lp", m, ok)
	}

	b.Rf.SetTxHP()
	if m, ok := b.Rf.Mode(); !ok || m != RfTxHP {
		t.Fatalf("Mode() after SetTxHP = %v/%v", m, ok)
	}
	if level(t, s, gpio.PB0) != gpio.High || level(t, s, gpio.PA8) != gpio.Low {
		t.Fatal("SetTxHP should drive (high, low)")
	}
	b.Red.Toggle()
	b.Red.Toggle()
	if !b.Red.IsOn() {
		t.Fatal("two toggles should restore the LED")
	}

	// Stealing does not claim, so a new owner can still take the board,
	// and freeing the stolen handles leaves that owner's claims alone.
	next := mustRun(t, func(cs *critical.Token) (*Board, error) { return New(gpio.StealPins(), cs) })
	b.Free()
	for _, w := range Wiring {
		if !gpio.Claimed(w.ID) {
			t.Fatalf("%s lost its claim when the stolen board was freed", w.Name)
		}
	}
	next.Free()
}
