package platform

import (
	"sync"

	"m401-bsp/gpio"
)

// SimLine is the simulated state of one pin.
type SimLine struct {
	Output bool
	Args   gpio.OutputArgs // valid when Output
	Pull   gpio.Pull
	Driven gpio.Level // last level written while an output

	External    bool // an external source is driving the line
	ExternalLvl gpio.Level
}

// level is what the input data register would read. A released open-drain
// output follows whatever holds the line.
func (l *SimLine) level() gpio.Level {
	switch {
	case l.Output && l.Args.OutputType == gpio.OpenDrain && l.Driven == gpio.High && l.External:
		return l.ExternalLvl
	case l.Output:
		return l.Driven
	case l.External:
		return l.ExternalLvl
	case l.Pull == gpio.PullUp:
		return gpio.High
	default:
		return gpio.Low
	}
}

// Sim is an in-memory gpio.Driver for host runs and tests. Outputs loop back
// to Get; inputs read an externally driven level or their pull.
type Sim struct {
	mu     sync.RWMutex
	lines  map[gpio.ID]*SimLine
	writes int
}

var _ gpio.Driver = (*Sim)(nil)

func NewSim() *Sim { return &Sim{lines: make(map[gpio.ID]*SimLine)} }

// caller holds lock
func (s *Sim) line(id gpio.ID) *SimLine {
	l, ok := s.lines[id]
	if !ok {
		l = &SimLine{}
		s.lines[id] = l
	}
	return l
}

func (s *Sim) ConfigureOutput(id gpio.ID, args gpio.OutputArgs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.line(id)
	l.Output, l.Args, l.Pull, l.Driven = true, args, args.Pull, args.Level
	s.writes++
}

func (s *Sim) ConfigureInput(id gpio.ID, pull gpio.Pull) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.line(id)
	l.Output, l.Args, l.Pull = false, gpio.OutputArgs{}, pull
	s.writes++
}

func (s *Sim) Set(id gpio.ID, level gpio.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// The output data register is written even while the pin is an input.
	s.line(id).Driven = level
	s.writes++
}

func (s *Sim) Get(id gpio.ID) gpio.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.lines[id]; ok {
		return l.level()
	}
	return gpio.Low
}

func (s *Sim) Driven(id gpio.ID) gpio.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.lines[id]; ok {
		return l.Driven
	}
	return gpio.Low
}

// Drive simulates an external source holding the line at level.
func (s *Sim) Drive(id gpio.ID, level gpio.Level) {
	s.mu.Lock()
	l := s.line(id)
	l.External, l.ExternalLvl = true, level
	s.mu.Unlock()
}

// Release stops driving the line externally.
func (s *Sim) Release(id gpio.ID) {
	s.mu.Lock()
	s.line(id).External = false
	s.mu.Unlock()
}

// Press and Unpress simulate an active-low button shorting the line.
func (s *Sim) Press(id gpio.ID)   { s.Drive(id, gpio.Low) }
func (s *Sim) Unpress(id gpio.ID) { s.Release(id) }

// Line returns a copy of the simulated state of id.
func (s *Sim) Line(id gpio.ID) (SimLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lines[id]
	if !ok {
		return SimLine{}, false
	}
	return *l, true
}

// Writes counts register writes (configuration and level) so far.
func (s *Sim) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
