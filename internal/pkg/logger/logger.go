package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/sheldir/provsh/internal/ports"
)

// ZeroLogger implements ports.Logger on top of zerolog's console writer.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a ZeroLogger writing to stderr. When verbose is false only
// warnings and errors are emitted.
func New(verbose bool) *ZeroLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &ZeroLogger{
		log: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}

var _ ports.Logger = (*ZeroLogger)(nil)
