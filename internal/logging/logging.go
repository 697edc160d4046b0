// Package logging builds the zap logger used by the generator commands.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	Verbose bool // debug level
	Quiet   bool // warnings and errors only; wins over Verbose
	Color   bool // colored level names
}

// New returns a console logger writing to w without timestamps.
func New(w io.Writer, opts Options) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if opts.Color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zapcore.InfoLevel
	switch {
	case opts.Quiet:
		level = zapcore.WarnLevel
	case opts.Verbose:
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}
