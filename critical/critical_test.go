package critical

import (
	"errors"
	"sync"
	"testing"
)

func TestTokenValidOnlyInsideSection(t *testing.T) {
	var leaked *Token
	With(func(cs *Token) {
		if !cs.Valid() {
			t.Fatal("token should be valid inside the section")
		}
		leaked = cs
	})
	if leaked.Valid() {
		t.Fatal("token should be invalid once the section closes")
	}
	var zero Token
	if zero.Valid() {
		t.Fatal("zero token must not be valid")
	}
	var nilTok *Token
	if nilTok.Valid() {
		t.Fatal("nil token must not be valid")
	}
}

func TestRunReturnsValueAndError(t *testing.T) {
	v, err := Run(func(cs *Token) (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Fatalf("Run = %d, %v", v, err)
	}
	boom := errors.New("boom")
	_, err = Run(func(cs *Token) (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Run err = %v", err)
	}
}

func TestSectionsExclude(t *testing.T) {
	var wg sync.WaitGroup
	inside := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				With(func(*Token) {
					inside++
					if inside != 1 {
						t.Errorf("overlapping sections: %d", inside)
					}
					inside--
				})
			}
		}()
	}
	wg.Wait()
}

func TestPanicClosesSection(t *testing.T) {
	var leaked *Token
	func() {
		defer func() { _ = recover() }()
		With(func(cs *Token) {
			leaked = cs
			panic("boom")
		})
	}()
	if leaked.Valid() {
		t.Fatal("token should be invalid after a panicking body")
	}
	// The lock must have been released.
	With(func(*Token) {})
}
