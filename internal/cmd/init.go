package cmd

import (
	"errors"
	"fmt"

	"github.com/minicodemonkey/boardgen/internal/config"
	"github.com/minicodemonkey/boardgen/internal/paths"
	"go.uber.org/zap"
)

// ErrConfigExists is returned by RunInit when the settings file is already
// present.
var ErrConfigExists = errors.New("config already exists")

// InitOptions contains configuration for the init command.
type InitOptions struct {
	Path      string      // Settings file (default: boardgen.yaml in the current directory)
	OutputDir string      // Output root to record (default: paths.DefaultOutputRoot)
	Logger    *zap.Logger // Progress log (default: discarded)
}

// RunInit writes a default settings file. An existing file is left
// untouched.
func RunInit(opts InitOptions) error {
	if opts.Path == "" {
		opts.Path = paths.ConfigPath(".")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if config.Exists(opts.Path) {
		return fmt.Errorf("%w at %s", ErrConfigExists, opts.Path)
	}

	cfg := config.Default()
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if err := config.Save(opts.Path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	opts.Logger.Info("Created", zap.String("path", opts.Path), zap.String("outputDir", cfg.OutputDir))
	return nil
}
