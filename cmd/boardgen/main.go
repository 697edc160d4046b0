package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/minicodemonkey/boardgen/internal/cmd"
	"github.com/minicodemonkey/boardgen/internal/config"
	"github.com/minicodemonkey/boardgen/internal/logging"
	"github.com/minicodemonkey/boardgen/internal/paths"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `Usage: boardgen [flags] [command]

Writes the placeholder audio and sprite assets for the board game.

Commands:
  all        generate sprites and audio (default)
  audio      generate the WAV files only
  sprites    generate the PNG files only
  manifest   print the asset manifest as YAML
  init       write a default boardgen.yaml

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one boardgen invocation and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		outDir     string
		configPath string
		verbose    bool
		quiet      bool
	)
	flags := pflag.NewFlagSet("boardgen", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outDir, "out", "o", "", "output root (default from config, else "+paths.DefaultOutputRoot+")")
	flags.StringVarP(&configPath, "config", "c", paths.ConfigPath("."), "settings file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log rendering details")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config %s: %v\n", configPath, err)
		return 1
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = quiet
	}

	logger := logging.New(stderr, logging.Options{
		Verbose: cfg.Verbose,
		Quiet:   cfg.Quiet,
		Color:   isTerminal(stderr),
	})
	defer func() { _ = logger.Sync() }()

	command := "all"
	if flags.NArg() > 0 {
		command = flags.Arg(0)
	}

	opts := cmd.GenerateOptions{
		OutputDir: cfg.OutputDir,
		Logger:    logger,
		Out:       stdout,
	}
	switch command {
	case "all":
		err = cmd.RunAll(opts)
	case "audio":
		err = cmd.RunAudio(opts)
	case "sprites":
		err = cmd.RunSprites(opts)
	case "manifest":
		err = cmd.RunManifest(cmd.ManifestOptions{
			Out:   stdout,
			Color: isTerminal(stdout),
		})
	case "init":
		err = cmd.RunInit(cmd.InitOptions{
			Path:      configPath,
			OutputDir: outDir,
			Logger:    logger,
		})
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n\n", command)
		flags.Usage()
		return 2
	}

	if err != nil {
		logger.Error("Command failed", zap.String("command", command), zap.Error(err))
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logging.IsTerminal(f)
}
