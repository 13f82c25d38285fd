// Package logging sets up the global zerolog logger: human readable lines on
// the console and JSON lines in a rotated file under debug/.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelEnv overrides the console level, e.g. MAA_LOG_LEVEL=debug.
const LevelEnv = "MAA_LOG_LEVEL"

type Config struct {
	Dir          string
	FileName     string
	ConsoleLevel zerolog.Level
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
	// Console is where human readable lines go.
	Console io.Writer
}

func DefaultConfig() Config {
	return Config{
		Dir:          "debug",
		FileName:     "go-service.log",
		ConsoleLevel: zerolog.InfoLevel,
		MaxSizeMB:    10,
		MaxBackups:   3,
		MaxAgeDays:   14,
		Console:      os.Stdout,
	}
}

// levelFilter forwards records at or above min. min can change at runtime.
type levelFilter struct {
	w   io.Writer
	min atomic.Int32
}

func newLevelFilter(w io.Writer, min zerolog.Level) *levelFilter {
	f := &levelFilter{w: w}
	f.min.Store(int32(min))
	return f
}

func (f *levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f *levelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.Level(f.min.Load()) {
		return len(p), nil
	}
	return f.w.Write(p)
}

func (f *levelFilter) setLevel(level zerolog.Level) {
	f.min.Store(int32(level))
}

var console atomic.Pointer[levelFilter]

// Init installs the global logger. The returned cleanup closes the log file.
func Init(cfg Config) (func(), error) {
	if env := os.Getenv(LevelEnv); env != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(env))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", LevelEnv, err)
		}
		cfg.ConsoleLevel = level
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, cfg.FileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
		Compress:   true,
	}

	out := cfg.Console
	if out == nil {
		out = os.Stdout
	}
	consoleWriter := newLevelFilter(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.DateTime,
	}, cfg.ConsoleLevel)
	console.Store(consoleWriter)

	log.Logger = New(lj, consoleWriter)
	zerolog.DefaultContextLogger = &log.Logger

	cleanup := func() {
		if err := lj.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close log file")
		}
	}
	return cleanup, nil
}

// New builds a logger writing every level to file and whatever console
// lets through.
func New(file io.Writer, consoleWriter zerolog.LevelWriter) zerolog.Logger {
	return zerolog.New(zerolog.MultiLevelWriter(file, consoleWriter)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Caller().
		Logger()
}

// SetConsoleLevel changes the console level of the logger installed by Init.
func SetConsoleLevel(level zerolog.Level) {
	if f := console.Load(); f != nil {
		f.setLevel(level)
		log.Info().Str("level", level.String()).Msg("Console log level changed")
	}
}
