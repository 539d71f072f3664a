// internal/utils/logger.go
package utils

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-admin/internal/config"
)

// SetupLogger configures the standard logrus logger. Production gets JSON
// lines, everything else gets text with full timestamps.
func SetupLogger(cfg *config.Config) {
	logrus.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.WithError(err).Warnf("Unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
