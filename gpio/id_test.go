package gpio

import "testing"

func TestIDNamesRoundTrip(t *testing.T) {
	for _, id := range AllIDs {
		if !id.Valid() {
			t.Fatalf("%v listed but not valid", id)
		}
		got, err := ParseID(id.String())
		if err != nil || got != id {
			t.Fatalf("ParseID(%q) = %v, %v", id.String(), got, err)
		}
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		want ID
		ok   bool
	}{
		{"B3", PB3, true},
		{"PB3", PB3, true},
		{"a8", PA8, true},
		{"A15", PA15, true},
		{"C13", PC13, true},
		{"H3", PH3, true},
		{"C7", 0, false},
		{"H0", 0, false},
		{"A16", 0, false},
		{"D1", 0, false},
		{"B", 0, false},
		{"Bx", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseID(c.in)
		if (err == nil) != c.ok || (c.ok && got != c.want) {
			t.Errorf("ParseID(%q) = %v, %v", c.in, got, err)
		}
	}
}

func TestIDLayout(t *testing.T) {
	if PA0 != 0 || PB0 != 16 || PC13 != 45 || PH3 != 115 {
		t.Fatalf("ID layout changed: A0=%d B0=%d C13=%d H3=%d", PA0, PB0, PC13, PH3)
	}
	if PB3.Port() != PortB || PB3.Line() != 3 {
		t.Fatalf("PB3 decoded as %v%d", PB3.Port(), PB3.Line())
	}
}
