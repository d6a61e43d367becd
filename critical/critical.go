// Package critical provides the proof token required to claim a GPIO.
//
// A *Token is only valid inside the function passed to With or Run. On
// TinyGo builds the body runs with interrupts masked; on host builds it
// runs under a process-wide mutex. Sections are not re-entrant on host
// builds.
package critical

// Token proves the holder is inside a critical section.
type Token struct {
	live bool
}

// Valid reports whether t belongs to a section that is still open.
func (t *Token) Valid() bool { return t != nil && t.live }

// With runs f inside a critical section.
func With(f func(cs *Token)) {
	st := enter()
	t := &Token{live: true}
	defer func() {
		t.live = false
		exit(st)
	}()
	f(t)
}

// Run is With for bodies that produce a value.
func Run[T any](f func(cs *Token) (T, error)) (v T, err error) {
	With(func(cs *Token) { v, err = f(cs) })
	return v, err
}
