package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so library code and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log. LOG_LEVEL and LOG_FORMAT override the arguments.
func Init(level, format string) {
	Log = logrus.New()
	Configure(Log, level, format)
	Log.SetOutput(os.Stdout)
}

// Configure applies level and format to l; used for live config reloads.
func Configure(l *logrus.Logger, level, format string) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// WithComponent tags entries with the subsystem that produced them.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
