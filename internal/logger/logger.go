package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. Initialize must be called once at
// startup before it is used.
var Log *logrus.Logger

// Initialize sets up the logger: level from LOG_LEVEL, plain-text output
// to stdout and, when possible, a log file under LOG_DIR.
func Initialize() {
	Log = logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		Log.Warnf("failed to create log directory: %v", err)
		return
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "campusvoice.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		Log.Warnf("failed to open log file: %v", err)
		return
	}
	Log.SetOutput(io.MultiWriter(os.Stdout, file))
}

func Info(msg string, fields logrus.Fields) {
	Log.WithFields(fields).Info(msg)
}

func Warn(msg string, fields logrus.Fields) {
	Log.WithFields(fields).Warn(msg)
}

func Error(msg string, fields logrus.Fields) {
	Log.WithFields(fields).Error(msg)
}
