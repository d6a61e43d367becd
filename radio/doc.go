// Package radio connects the board's RF switch to the sub-GHz radio driver
// in tinygo.org/x/drivers/sx126x. It only builds for STM32WL TinyGo targets.
package radio
