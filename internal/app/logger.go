package app

import (
	"os"

	"github.com/packlane/box-picker/internal/logger"
)

// InitializeLogger configures logging from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
