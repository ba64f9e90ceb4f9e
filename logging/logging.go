// Process-wide logger setup. The logger defaults to a no-op so that library
// packages and tests can log without any initialization.

package logging

import (
	"go.uber.org/zap"
)

var Logger = zap.NewNop().Sugar()

// InitLogger replaces the process-wide logger. With debug enabled every
// external tool invocation is logged, otherwise only warnings and errors
// make it through.
func InitLogger(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger.Sugar()
	return nil
}
