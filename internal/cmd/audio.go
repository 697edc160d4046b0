// Package cmd provides the boardgen command implementations: audio,
// sprites, all, manifest and init.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/minicodemonkey/boardgen/internal/manifest"
	"github.com/minicodemonkey/boardgen/internal/paths"
	"github.com/minicodemonkey/boardgen/internal/synth"
	"github.com/minicodemonkey/boardgen/internal/wavfile"
	"go.uber.org/zap"
)

// GenerateOptions contains configuration for the generate commands.
type GenerateOptions struct {
	OutputDir string      // Output root (default: paths.DefaultOutputRoot)
	Logger    *zap.Logger // Progress log (default: discarded)
	Out       io.Writer   // Summary destination (default: no summary)
}

func (opts GenerateOptions) withDefaults() GenerateOptions {
	if opts.OutputDir == "" {
		opts.OutputDir = paths.DefaultOutputRoot
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

var audioGroupTitles = map[manifest.AudioGroup]string{
	manifest.GroupMusic:   "background music",
	manifest.GroupEffects: "sound effects",
	manifest.GroupUI:      "UI sounds",
}

// RunAudio writes every WAV file in the audio manifest. The first failure
// stops the run.
func RunAudio(opts GenerateOptions) error {
	opts = opts.withDefaults()
	res, err := generateAudio(opts)
	if err != nil {
		return err
	}
	return printSummary(opts.Out, res)
}

func generateAudio(opts GenerateOptions) (*Result, error) {
	log := opts.Logger
	log.Info("Generating audio assets...")

	dir := paths.AudioDir(opts.OutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}

	res := newResult("audio files")
	var group manifest.AudioGroup
	for _, asset := range manifest.Audio() {
		if asset.Group != group {
			group = asset.Group
			log.Info("Generating", zap.String("group", audioGroupTitles[group]))
		}

		samples, err := asset.Render(manifest.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", asset.File, err)
		}
		pcm := synth.Quantize(samples)

		path := paths.AudioPath(opts.OutputDir, asset.File)
		if err := wavfile.Write(path, pcm, manifest.SampleRate); err != nil {
			return nil, err
		}

		size := wavfile.Size(len(pcm))
		log.Debug("Rendered",
			zap.String("file", asset.File),
			zap.String("kind", string(asset.Kind)),
			zap.Int("samples", len(pcm)),
			zap.Float64("seconds", synth.Duration(len(pcm), manifest.SampleRate)),
		)
		log.Info("Created", zap.String("path", path), zap.Int("bytes", size))
		res.add(audioGroupTitles[asset.Group], int64(size))
	}

	return res, nil
}
