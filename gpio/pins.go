package gpio

// Pin is implemented by every pin identity type. Each physical pin has its
// own type so that wrappers such as Output[B3] are distinct at compile time;
// the claim bitset is what enforces a single owner at run time.
type Pin interface {
	ID() ID
}

// Pin IDs.
const (
	PA0  = ID(uint8(PortA)<<4 | 0)
	PA1  = ID(uint8(PortA)<<4 | 1)
	PA2  = ID(uint8(PortA)<<4 | 2)
	PA3  = ID(uint8(PortA)<<4 | 3)
	PA4  = ID(uint8(PortA)<<4 | 4)
	PA5  = ID(uint8(PortA)<<4 | 5)
	PA6  = ID(uint8(PortA)<<4 | 6)
	PA7  = ID(uint8(PortA)<<4 | 7)
	PA8  = ID(uint8(PortA)<<4 | 8)
	PA9  = ID(uint8(PortA)<<4 | 9)
	PA10 = ID(uint8(PortA)<<4 | 10)
	PA11 = ID(uint8(PortA)<<4 | 11)
	PA12 = ID(uint8(PortA)<<4 | 12)
	PA13 = ID(uint8(PortA)<<4 | 13)
	PA14 = ID(uint8(PortA)<<4 | 14)
	PA15 = ID(uint8(PortA)<<4 | 15)
	PB0  = ID(uint8(PortB)<<4 | 0)
	PB1  = ID(uint8(PortB)<<4 | 1)
	PB2  = ID(uint8(PortB)<<4 | 2)
	PB3  = ID(uint8(PortB)<<4 | 3)
	PB4  = ID(uint8(PortB)<<4 | 4)
	PB5  = ID(uint8(PortB)<<4 | 5)
	PB6  = ID(uint8(PortB)<<4 | 6)
	PB7  = ID(uint8(PortB)<<4 | 7)
	PB8  = ID(uint8(PortB)<<4 | 8)
	PB9  = ID(uint8(PortB)<<4 | 9)
	PB10 = ID(uint8(PortB)<<4 | 10)
	PB11 = ID(uint8(PortB)<<4 | 11)
	PB12 = ID(uint8(PortB)<<4 | 12)
	PB13 = ID(uint8(PortB)<<4 | 13)
	PB14 = ID(uint8(PortB)<<4 | 14)
	PB15 = ID(uint8(PortB)<<4 | 15)
	PC0  = ID(uint8(PortC)<<4 | 0)
	PC1  = ID(uint8(PortC)<<4 | 1)
	PC2  = ID(uint8(PortC)<<4 | 2)
	PC3  = ID(uint8(PortC)<<4 | 3)
	PC4  = ID(uint8(PortC)<<4 | 4)
	PC5  = ID(uint8(PortC)<<4 | 5)
	PC6  = ID(uint8(PortC)<<4 | 6)
	PC13 = ID(uint8(PortC)<<4 | 13)
	PC14 = ID(uint8(PortC)<<4 | 14)
	PC15 = ID(uint8(PortC)<<4 | 15)
	PH3  = ID(uint8(PortH)<<4 | 3)
)

// Pin identity types.
type (
	A0  struct{}
	A1  struct{}
	A2  struct{}
	A3  struct{}
	A4  struct{}
	A5  struct{}
	A6  struct{}
	A7  struct{}
	A8  struct{}
	A9  struct{}
	A10 struct{}
	A11 struct{}
	A12 struct{}
	A13 struct{}
	A14 struct{}
	A15 struct{}
	B0  struct{}
	B1  struct{}
	B2  struct{}
	B3  struct{}
	B4  struct{}
	B5  struct{}
	B6  struct{}
	B7  struct{}
	B8  struct{}
	B9  struct{}
	B10 struct{}
	B11 struct{}
	B12 struct{}
	B13 struct{}
	B14 struct{}
	B15 struct{}
	C0  struct{}
	C1  struct{}
	C2  struct{}
	C3  struct{}
	C4  struct{}
	C5  struct{}
	C6  struct{}
	C13 struct{}
	C14 struct{}
	C15 struct{}
	H3  struct{}
)

func (A0) ID() ID  { return PA0 }
func (A1) ID() ID  { return PA1 }
func (A2) ID() ID  { return PA2 }
func (A3) ID() ID  { return PA3 }
func (A4) ID() ID  { return PA4 }
func (A5) ID() ID  { return PA5 }
func (A6) ID() ID  { return PA6 }
func (A7) ID() ID  { return PA7 }
func (A8) ID() ID  { return PA8 }
func (A9) ID() ID  { return PA9 }
func (A10) ID() ID { return PA10 }
func (A11) ID() ID { return PA11 }
func (A12) ID() ID { return PA12 }
func (A13) ID() ID { return PA13 }
func (A14) ID() ID { return PA14 }
func (A15) ID() ID { return PA15 }
func (B0) ID() ID  { return PB0 }
func (B1) ID() ID  { return PB1 }
func (B2) ID() ID  { return PB2 }
func (B3) ID() ID  { return PB3 }
func (B4) ID() ID  { return PB4 }
func (B5) ID() ID  { return PB5 }
func (B6) ID() ID  { return PB6 }
func (B7) ID() ID  { return PB7 }
func (B8) ID() ID  { return PB8 }
func (B9) ID() ID  { return PB9 }
func (B10) ID() ID { return PB10 }
func (B11) ID() ID { return PB11 }
func (B12) ID() ID { return PB12 }
func (B13) ID() ID { return PB13 }
func (B14) ID() ID { return PB14 }
func (B15) ID() ID { return PB15 }
func (C0) ID() ID  { return PC0 }
func (C1) ID() ID  { return PC1 }
func (C2) ID() ID  { return PC2 }
func (C3) ID() ID  { return PC3 }
func (C4) ID() ID  { return PC4 }
func (C5) ID() ID  { return PC5 }
func (C6) ID() ID  { return PC6 }
func (C13) ID() ID { return PC13 }
func (C14) ID() ID { return PC14 }
func (C15) ID() ID { return PC15 }
func (H3) ID() ID  { return PH3 }

// Pins holds one identity value per physical pin, as handed out by Take.
type Pins struct {
	A0  A0
	A1  A1
	A2  A2
	A3  A3
	A4  A4
	A5  A5
	A6  A6
	A7  A7
	A8  A8
	A9  A9
	A10 A10
	A11 A11
	A12 A12
	A13 A13
	A14 A14
	A15 A15
	B0  B0
	B1  B1
	B2  B2
	B3  B3
	B4  B4
	B5  B5
	B6  B6
	B7  B7
	B8  B8
	B9  B9
	B10 B10
	B11 B11
	B12 B12
	B13 B13
	B14 B14
	B15 B15
	C0  C0
	C1  C1
	C2  C2
	C3  C3
	C4  C4
	C5  C5
	C6  C6
	C13 C13
	C14 C14
	C15 C15
	H3  H3
}

// AllIDs lists every pin on the package in port order.
var AllIDs = [...]ID{
	PA0, PA1, PA2, PA3, PA4, PA5, PA6, PA7,
	PA8, PA9, PA10, PA11, PA12, PA13, PA14, PA15,
	PB0, PB1, PB2, PB3, PB4, PB5, PB6, PB7,
	PB8, PB9, PB10, PB11, PB12, PB13, PB14, PB15,
	PC0, PC1, PC2, PC3, PC4, PC5, PC6, PC13,
	PC14, PC15, PH3,
}
