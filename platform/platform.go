// Package platform provides the register-level gpio.Driver for each build:
// the STM32WL driver on TinyGo firmware builds, and a simulator or a
// periph.io-backed driver on host builds.
package platform

import "m401-bsp/gpio"

// Use registers d as the driver behind every gpio resource created from now
// on and returns it.
func Use[D gpio.Driver](d D) D {
	gpio.SetDriver(d)
	return d
}
