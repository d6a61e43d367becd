//go:build !tinygo

package platform

// Init registers a fresh simulator. Host tools that talk to real lines use
// OpenPeriph instead.
func Init() *Sim { return Use(NewSim()) }
