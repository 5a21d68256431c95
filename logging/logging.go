package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds a text logger for the given verbosity:
// 0 warnings and errors, 1 adds info, 2 adds debug.
func New(out io.Writer, verbose int) (*logrus.Logger, error) {
	var level logrus.Level

	switch verbose {
	case 0:
		level = logrus.WarnLevel
	case 1:
		level = logrus.InfoLevel
	case 2:
		level = logrus.DebugLevel
	default:
		return nil, fmt.Errorf("invalid verbose level: %d", verbose)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
	log.SetLevel(level)

	return log, nil
}
