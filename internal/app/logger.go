package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nekogravitycat/court-booking-planner/internal/config"
)

// NewLogger builds a JSON production logger for APP_ENV=prod and a colored
// development logger otherwise.
func NewLogger(env string) *zap.Logger {
	var cfg zap.Config

	if env == config.PROD_STRING {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}
