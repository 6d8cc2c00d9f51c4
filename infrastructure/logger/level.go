package logger

import "strings"

// Level is the level at which a logger is configured. All messages sent
// to a level which is below the current level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelTags are the tags written in front of each log entry
var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

// levelNames are the names accepted by LevelFromString besides the tags
var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "critical", "off"}

// LevelFromString returns a level based on the input string s. If the input
// can't be interpreted as a valid log level, the info level and false is
// returned.
func LevelFromString(s string) (l Level, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level := LevelTrace; level <= LevelOff; level++ {
		if s == levelNames[level] || s == strings.ToLower(levelTags[level]) {
			return level, true
		}
	}
	return LevelInfo, false
}

// String returns the tag of the logger used in log messages, or "OFF" if
// the level will not produce any log output.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelTags[l]
}
