package headerstore

import (
	"github.com/kaspanet/hybridgate/infrastructure/logger"
)

var log = logger.RegisterSubSystem("HDRS")
