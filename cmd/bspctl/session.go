//go:build !tinygo

package main

import (
	"fmt"

	"go.uber.org/zap"

	"m401-bsp/board"
	"m401-bsp/critical"
	"m401-bsp/gpio"
	"m401-bsp/internal/boardmap"
	"m401-bsp/internal/logging"
	"m401-bsp/platform"
)

// takePins hands out the pin identities. The claim registry still guards
// every line, so tests swap in gpio.StealPins to run several commands in
// one process.
var takePins = gpio.Take

// session is one claimed board on the selected driver.
type session struct {
	Map   *boardmap.Map
	Board *board.Board
	Sim   *platform.Sim // nil unless the simulator is in use
}

func loadMap() (*boardmap.Map, error) {
	if configPath == "" {
		return boardmap.Default(), nil
	}
	return boardmap.Load(configPath)
}

// openDriver registers the driver named by the board map.
func openDriver(m *boardmap.Map) (*platform.Sim, error) {
	log := logging.GetLogger()
	switch m.Driver {
	case boardmap.DriverPeriph:
		lines, err := m.Resolve()
		if err != nil {
			return nil, err
		}
		d, err := platform.OpenPeriph(lines, log.Named("periph"))
		if err != nil {
			return nil, err
		}
		platform.Use(d)
		log.Info("using periph driver", zap.Int("lines", len(lines)))
		return nil, nil
	default:
		log.Info("using simulator")
		return platform.Init(), nil
	}
}

// withBoard claims the whole board, runs f and frees the board again.
func withBoard(f func(s *session) error) error {
	m, err := loadMap()
	if err != nil {
		return err
	}
	sim, err := openDriver(m)
	if err != nil {
		return err
	}
	pins, err := takePins()
	if err != nil {
		return err
	}
	b, err := critical.Run(func(cs *critical.Token) (*board.Board, error) {
		return board.New(pins, cs)
	})
	if err != nil {
		return fmt.Errorf("claim board: %w", err)
	}
	defer b.Free()

	logging.GetLogger().Debug("board claimed", zap.Int("lines", len(board.Wiring)))
	return f(&session{Map: m, Board: b, Sim: sim})
}
