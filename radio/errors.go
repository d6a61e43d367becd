package radio

import "m401-bsp/errcode"

var errUnknownMode = errcode.Wrap(errcode.InvalidParams, "radio.SetRfSwitchMode", "unknown switch mode")
