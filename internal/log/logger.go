// Package log builds the logrus logger used by the hwindow commands.
package log

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vipcxj/hounsfield/internal/config"
)

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", ...) in the given format (config.LogFormatText or
// config.LogFormatJSON).
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	switch format {
	case config.LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case config.LogFormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return logger, nil
}

// FromConfig is New with the level and format of cfg.
func FromConfig(w io.Writer, cfg config.Config) (*logrus.Logger, error) {
	return New(w, cfg.LogLevel, cfg.LogFormat)
}
