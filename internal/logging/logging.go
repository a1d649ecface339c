package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// New builds the process logger. format is "text" or "json".
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return log, nil
}

// GormLevel maps the process log level onto gorm's SQL logger.
func GormLevel(log *logrus.Logger) logger.LogLevel {
	switch {
	case log.IsLevelEnabled(logrus.DebugLevel):
		return logger.Info
	case log.IsLevelEnabled(logrus.WarnLevel):
		return logger.Warn
	case log.IsLevelEnabled(logrus.ErrorLevel):
		return logger.Error
	default:
		return logger.Silent
	}
}
