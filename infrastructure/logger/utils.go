package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs at debug level that functionName started,
// and returns a function that logs how long it ran when called. It is meant
// to be deferred:
//
//	defer logger.LogAndMeasureExecutionTime(log, "ValidateBlock")()
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	if log.Level() > LevelDebug {
		return func() {}
	}

	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
