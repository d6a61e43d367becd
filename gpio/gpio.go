// Package gpio defines the ownership contract for the board's GPIO lines.
//
// A pin identity (A0, B3, ...) is an unclaimed configuration token. NewOutput
// and NewInput turn an identity into an owned, configured resource; Free
// turns it back. At most one owner per identity exists on the safe path:
// claims are recorded in a per-port bitset and can only be made while
// holding a critical.Token. StealOutput and StealInput bypass all of this.
//
// Register access is delegated to a Driver registered by the platform.
package gpio

import "m401-bsp/errcode"

// ------------------------
// Configuration descriptor
// ------------------------

// Level is a digital logic level.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Speed is the output slew rate / drive strength.
type Speed uint8

const (
	SpeedLow Speed = iota
	SpeedMedium
	SpeedHigh
	SpeedFast
)

func (s Speed) String() string {
	switch s {
	case SpeedLow:
		return "low"
	case SpeedMedium:
		return "medium"
	case SpeedHigh:
		return "high"
	case SpeedFast:
		return "fast"
	}
	return "invalid"
}

// OutputType selects the output driver topology.
type OutputType uint8

const (
	PushPull OutputType = iota
	OpenDrain
)

func (o OutputType) String() string {
	switch o {
	case PushPull:
		return "push_pull"
	case OpenDrain:
		return "open_drain"
	}
	return "invalid"
}

// Pull selects the internal bias resistor.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullNone:
		return "none"
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	}
	return "invalid"
}

// OutputArgs fully describes an output configuration.
type OutputArgs struct {
	Speed      Speed
	Level      Level // initial level, driven before NewOutput returns
	OutputType OutputType
	Pull       Pull
}

func (a *OutputArgs) validate() error {
	if a == nil || a.Speed > SpeedFast || a.OutputType > OpenDrain || a.Pull > PullDown {
		return errcode.InvalidParams
	}
	return nil
}

// ------------------------
// Register-level driver
// ------------------------

// Driver is the register layer beneath the ownership contract. It is
// assumed correct: configuration and level access cannot fail. Get returns
// the level present on the line (input data register). Driven returns the
// level last written to the output data register, which differs from Get
// on an open-drain output whose line is held low externally.
type Driver interface {
	ConfigureOutput(id ID, args OutputArgs)
	ConfigureInput(id ID, pull Pull)
	Set(id ID, level Level)
	Get(id ID) Level
	Driven(id ID) Level
}

// Global singleton used by the resource types.
var driver Driver

// SetDriver is called by platform code to register its driver.
// Resources capture the driver current at construction time.
func SetDriver(d Driver) {
	driver = d
}

// CurrentDriver returns the registered driver, or nil.
func CurrentDriver() Driver { return driver }

func mustDriver() Driver {
	if driver == nil {
		panic("gpio: driver not configured")
	}
	return driver
}
