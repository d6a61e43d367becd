package gpio

import (
	"sync/atomic"

	"m401-bsp/critical"
	"m401-bsp/errcode"
)

// ------------------------
// Claim registry
// ------------------------

// One bit per line, one word per port. Claims require a critical section;
// releases are single atomic clears and need none.
var claimed [numPorts]atomic.Uint32

func claim(op string, id ID, cs *critical.Token) error {
	if !cs.Valid() {
		return errcode.Wrap(errcode.NoCriticalSection, op, id.String())
	}
	if !id.Valid() {
		return errcode.Wrap(errcode.UnknownPin, op, id.String())
	}
	w := &claimed[id.Port()]
	for {
		old := w.Load()
		if old&id.mask() != 0 {
			return errcode.Wrap(errcode.PinInUse, op, id.String())
		}
		if w.CompareAndSwap(old, old|id.mask()) {
			return nil
		}
	}
}

func release(id ID) {
	w := &claimed[id.Port()]
	for {
		old := w.Load()
		if w.CompareAndSwap(old, old&^id.mask()) {
			return
		}
	}
}

// Claimed reports whether id currently has an owner on the safe path.
// Stolen resources are not recorded.
func Claimed(id ID) bool {
	if !id.Valid() {
		return false
	}
	return claimed[id.Port()].Load()&id.mask() != 0
}

// ------------------------
// Identity acquisition
// ------------------------

var pinsTaken atomic.Bool

// Take hands out the pin identities. It succeeds once per program run.
func Take() (*Pins, error) {
	if !pinsTaken.CompareAndSwap(false, true) {
		return nil, errcode.AlreadyTaken
	}
	return &Pins{}, nil
}

// StealPins returns the pin identities without marking them taken.
//
// Unsafe: the caller must guarantee that no other code is using identities
// obtained from Take, or that such use has been ruled out by other means
// (for example a fault handler that never returns).
func StealPins() *Pins {
	return &Pins{}
}
