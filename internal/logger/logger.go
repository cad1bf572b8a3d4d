package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Production gets JSON output and info level,
// everything else gets the human-readable development config.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
