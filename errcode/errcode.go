package errcode

import "errors"

// Code is a stable, short error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"

	// Ownership misuse on the safe construction path.
	UnknownPin        Code = "unknown_pin"
	PinInUse          Code = "pin_in_use"
	AlreadyTaken      Code = "already_taken"
	NoCriticalSection Code = "no_critical_section"
	NoDriver          Code = "no_driver"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.PinInUse) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap attaches an operation and message to a code.
func Wrap(c Code, op, msg string) error {
	return &E{C: c, Op: op, Msg: msg, Err: c}
}

type coder interface{ Code() Code }

// Of extracts a Code from an error, looking through wrapping. Defaults to
// Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}
