package logger

import (
	"fmt"
)

// logEntry is a single rendered log line queued for a Backend's writers.
type logEntry struct {
	level Level
	log   []byte
}

// Logger writes formatted messages for one subsystem to a Backend, subject
// to its own independently adjustable level.
type Logger struct {
	lvl         Level
	subsystemID string
	b           *Backend
	writeChan   chan logEntry
}

// Level returns the current logging level of the logger.
func (l *Logger) Level() Level {
	return l.lvl
}

// SetLevel changes the logging level of the logger.
func (l *Logger) SetLevel(level Level) {
	l.lvl = level
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	if level < l.lvl {
		return
	}
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("%s [%s] %s\n", level, l.subsystemID, msg)
	select {
	case l.writeChan <- logEntry{level: level, log: []byte(line)}:
	default:
		// The backend isn't running yet (or its channel is full); drop
		// rather than block the caller.
	}
}

// Tracef formats and writes a trace-level log message.
func (l *Logger) Tracef(format string, args ...interface{}) { l.write(LevelTrace, format, args...) }

// Debugf formats and writes a debug-level log message.
func (l *Logger) Debugf(format string, args ...interface{}) { l.write(LevelDebug, format, args...) }

// Infof formats and writes an info-level log message.
func (l *Logger) Infof(format string, args ...interface{}) { l.write(LevelInfo, format, args...) }

// Warnf formats and writes a warn-level log message.
func (l *Logger) Warnf(format string, args ...interface{}) { l.write(LevelWarn, format, args...) }

// Errorf formats and writes an error-level log message.
func (l *Logger) Errorf(format string, args ...interface{}) { l.write(LevelError, format, args...) }

// Criticalf formats and writes a critical-level log message.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, format, args...)
}
