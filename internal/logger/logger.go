package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// defaultLevel keeps palettekit quiet unless a colour had to be dropped or
// adjusted while composing.
const defaultLevel = zerolog.WarnLevel

// Options controls where palettekit diagnostics go and how verbose they are.
type Options struct {
	// Level is a zerolog level name; empty means warn.
	Level string
	// HumanReadable switches from JSON lines to the coloured console format.
	HumanReadable bool
	// Writer defaults to stderr so log lines never mix with palette output.
	Writer io.Writer
}

// Logger is the diagnostics sink handed to CLI commands. Packages under pkg/
// receive the zerolog.Logger behind it through Zerolog so they stay free of
// this internal package.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from opts. An unknown level name is an error.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	zl := zerolog.New(sink(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return defaultLevel, nil
	}
	return zerolog.ParseLevel(name)
}

func sink(opts Options) io.Writer {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if !opts.HumanReadable {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
}

// Nop discards everything; handy for tests and library callers.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Zerolog returns the configured zerolog.Logger, or a disabled one for a nil
// receiver.
func (l *Logger) Zerolog() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.zl
}

// WithFields derives a Logger that stamps every entry with fields, e.g. the
// command name or the seed colour being expanded.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.emit(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg at error level with err attached when it is non-nil.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
