// Package log is a thin package-level wrapper over charmbracelet/log:
// Init/Info/Warn/Error/Debug/Fatal helpers over a timestamped stderr
// logger. The level defaults to Info and can be raised with SetDebug.
package log

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

func Init(appName string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(log.InfoLevel)
}

func init() {
	Init("riichi")
}

func SetDebug() { logger.SetLevel(log.DebugLevel) }

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Info(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warn(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Error(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debug(format)
	} else {
		logger.Debugf(format, args...)
	}
}
