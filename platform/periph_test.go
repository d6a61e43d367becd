//go:build !tinygo

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"m401-bsp/gpio"
)

func newPeriphFixture(t *testing.T) (*Periph, map[gpio.ID]*gpiotest.Pin, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	pins := map[gpio.ID]*gpiotest.Pin{
		gpio.PB3: {N: "GPIO17", Num: 17},
		gpio.PA0: {N: "GPIO27", Num: 27},
	}
	lines := make(map[gpio.ID]pgpio.PinIO, len(pins))
	for id, p := range pins {
		lines[id] = p
	}
	return NewPeriph(lines, zap.New(core)), pins, logs
}

func TestPeriphOutput(t *testing.T) {
	d, pins, logs := newPeriphFixture(t)

	d.ConfigureOutput(gpio.PB3, gpio.OutputArgs{Speed: gpio.SpeedFast, Level: gpio.High})
	assert.Equal(t, pgpio.High, pins[gpio.PB3].Read())
	assert.Equal(t, gpio.High, d.Get(gpio.PB3))

	d.Set(gpio.PB3, gpio.Low)
	assert.Equal(t, pgpio.Low, pins[gpio.PB3].Read())
	assert.Equal(t, gpio.Low, d.Get(gpio.PB3))
	assert.Equal(t, gpio.Low, d.Driven(gpio.PB3))

	require.NotZero(t, logs.FilterMessage("configured output").Len())
}

func TestPeriphInputPull(t *testing.T) {
	d, pins, _ := newPeriphFixture(t)

	d.ConfigureInput(gpio.PA0, gpio.PullUp)
	assert.Equal(t, pgpio.PullUp, pins[gpio.PA0].Pull())
	assert.Equal(t, gpio.High, d.Get(gpio.PA0))

	d.ConfigureInput(gpio.PA0, gpio.PullDown)
	assert.Equal(t, pgpio.PullDown, pins[gpio.PA0].Pull())
	assert.Equal(t, gpio.Low, d.Get(gpio.PA0))

	d.ConfigureInput(gpio.PA0, gpio.PullNone)
	assert.Equal(t, pgpio.Float, pins[gpio.PA0].Pull())
}

func TestPeriphUnmappedPinWarns(t *testing.T) {
	d, _, logs := newPeriphFixture(t)

	d.Set(gpio.PB5, gpio.High)
	assert.Equal(t, gpio.Low, d.Get(gpio.PB5))
	assert.Equal(t, 2, logs.FilterMessage("pin not mapped to a host line").Len())
}
