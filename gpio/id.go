package gpio

import "m401-bsp/errcode"

// Port is a GPIO port letter. Values follow the hardware port index so
// that ID values match the MCU pin numbering (port*16 + line).
type Port uint8

const (
	PortA Port = 0
	PortB Port = 1
	PortC Port = 2
	PortH Port = 7

	numPorts = 8
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "A"
	case PortB:
		return "B"
	case PortC:
		return "C"
	case PortH:
		return "H"
	}
	return "?"
}

// ID identifies one physical pin.
type ID uint8

// MakeID builds an ID from a port and a line number (0..15).
func MakeID(p Port, line uint8) ID { return ID(uint8(p)<<4 | line&0x0f) }

func (id ID) Port() Port   { return Port(id >> 4) }
func (id ID) Line() uint8  { return uint8(id) & 0x0f }
func (id ID) mask() uint32 { return 1 << id.Line() }

// Valid reports whether id names a pin that exists on the package.
func (id ID) Valid() bool {
	l := id.Line()
	switch id.Port() {
	case PortA, PortB:
		return true
	case PortC:
		return l <= 6 || l >= 13
	case PortH:
		return l == 3
	}
	return false
}

func (id ID) String() string {
	l := id.Line()
	if l >= 10 {
		return id.Port().String() + "1" + string(rune('0'+l-10))
	}
	return id.Port().String() + string(rune('0'+l))
}

// ParseID parses names such as "B3", "PB3" or "a8".
func ParseID(s string) (ID, error) {
	if len(s) >= 2 && (s[0] == 'P' || s[0] == 'p') && isPortLetter(s[1]) {
		s = s[1:]
	}
	if len(s) < 2 || len(s) > 3 {
		return 0, errcode.UnknownPin
	}
	var p Port
	switch s[0] {
	case 'A', 'a':
		p = PortA
	case 'B', 'b':
		p = PortB
	case 'C', 'c':
		p = PortC
	case 'H', 'h':
		p = PortH
	default:
		return 0, errcode.UnknownPin
	}
	n := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return 0, errcode.UnknownPin
		}
		n = n*10 + int(c-'0')
	}
	if n > 15 {
		return 0, errcode.UnknownPin
	}
	id := MakeID(p, uint8(n))
	if !id.Valid() {
		return 0, errcode.UnknownPin
	}
	return id, nil
}

func isPortLetter(c byte) bool {
	switch c {
	case 'A', 'a', 'B', 'b', 'C', 'c', 'H', 'h':
		return true
	}
	return false
}
