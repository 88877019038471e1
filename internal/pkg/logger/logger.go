package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls how Configure builds the process logger
type Options struct {
	Level zerolog.Level
	// Pretty switches to a human readable console writer
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

var base zerolog.Logger

// ParseLevel maps a level name from configuration onto a zerolog level. Unknown or empty
// names fall back to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Configure replaces the package logger and the zerolog global logger.
func Configure(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(opts.Level)

	base = zerolog.New(out).With().Timestamp().Logger()
	log.Logger = base
}

// Get returns the configured logger
func Get() zerolog.Logger { return base }

// Component returns a child logger tagged with the component name
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return base.Debug() }
func Info() *zerolog.Event { return base.Info() }
func Warn() *zerolog.Event { return base.Warn() }
func Error() *zerolog.Event { return base.Error() }

func init() {
	Configure(Options{Level: zerolog.InfoLevel, Pretty: true})
}
