package logger

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// backendLog is the single Backend all subsystem loggers in the process
// write through.
var backendLog = NewBackend()

// subsystems maps each registered subsystem tag to its Logger, so
// ParseAndSetDebugLevels can adjust every subsystem's level by name.
var subsystems = make(map[string]*Logger)

// InitLog attaches the main and error log files to the shared backend and
// starts it running. Should be called exactly once during startup, before
// any subsystem logger is used.
func InitLog(logFile, errLogFile string) {
	if err := backendLog.AddLogFile(logFile, LevelTrace); err != nil {
		panic(errors.Wrapf(err, "failed to add log file %s", logFile))
	}
	if err := backendLog.AddLogFile(errLogFile, LevelWarn); err != nil {
		panic(errors.Wrapf(err, "failed to add error log file %s", errLogFile))
	}
	if err := backendLog.Run(); err != nil {
		panic(errors.Wrap(err, "failed to start log backend"))
	}
}

// NewSubsystem registers and returns a Logger for the named subsystem, at
// LevelInfo. Call once per package, typically to initialise that package's
// log var directly.
func NewSubsystem(tag string) *Logger {
	l := backendLog.Logger(tag)
	l.SetLevel(LevelInfo)
	subsystems[tag] = l
	return l
}

// SupportedSubsystems returns the tags of every subsystem registered with
// NewSubsystem, sorted for stable display.
func SupportedSubsystems() []string {
	tags := make([]string, 0, len(subsystems))
	for tag := range subsystems {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ParseAndSetDebugLevels parses a debug level specifier of the form
// "<level>" (applies to every subsystem) or
// "<subsystem>=<level>,<subsystem2>=<level2>,..." and applies it. A bare
// level is accepted only as the whole specifier, not as one part of a list.
func ParseAndSetDebugLevels(spec string) error {
	parts := strings.Split(spec, ",")

	if len(parts) == 1 && !strings.Contains(parts[0], "=") {
		level, ok := LevelFromString(parts[0])
		if !ok {
			return errors.Errorf("invalid log level %q", parts[0])
		}
		for _, l := range subsystems {
			l.SetLevel(level)
		}
		return nil
	}

	for _, part := range parts {
		fields := strings.Split(part, "=")
		if len(fields) != 2 {
			return errors.Errorf("invalid debug level specifier %q", part)
		}
		tag, levelStr := fields[0], fields[1]
		l, ok := subsystems[tag]
		if !ok {
			return errors.Errorf("unknown subsystem %q", tag)
		}
		level, ok := LevelFromString(levelStr)
		if !ok {
			return errors.Errorf("invalid log level %q for subsystem %q", levelStr, tag)
		}
		l.SetLevel(level)
	}
	return nil
}
