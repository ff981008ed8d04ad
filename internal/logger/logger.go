package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init installs the global zap logger for the given environment.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
