package main

import (
	"github.com/kaspanet/hybridgate/infrastructure/logger"
)

var log = logger.RegisterSubSystem("GCTL")
