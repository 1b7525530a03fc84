package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. It writes JSON to stdout until Init is called.
var Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger for the given service.
func Init(serviceName string, isDevelopment bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if isDevelopment {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
		level = zerolog.DebugLevel
	}

	Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
}

// Silence discards all output. Used by tests.
func Silence() {
	Logger = zerolog.Nop()
	log.Logger = Logger
}
