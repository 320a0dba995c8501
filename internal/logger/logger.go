package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

const service = "order-service"

// New builds the process logger: JSON to stdout, tagged with the service
// name. An unknown level falls back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
