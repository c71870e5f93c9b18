package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds the application logger and installs it as the zap
// global. The level string comes from configuration; debug mode forces
// the development encoder regardless of level.
func Setup(debug bool, level, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		if lvl, perr := zapcore.ParseLevel(level); perr == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}
