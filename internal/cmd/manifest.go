package cmd

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/minicodemonkey/boardgen/internal/manifest"
)

// ManifestOptions contains configuration for the manifest command.
type ManifestOptions struct {
	Out   io.Writer // Destination for the YAML document
	Color bool      // Syntax-highlight the output
}

// RunManifest prints the asset manifest as YAML.
func RunManifest(opts ManifestOptions) error {
	data, err := manifest.YAML()
	if err != nil {
		return err
	}

	if !opts.Color {
		_, err := opts.Out.Write(data)
		return err
	}

	if err := quick.Highlight(opts.Out, string(data), "yaml", "terminal256", "monokai"); err != nil {
		return fmt.Errorf("failed to highlight manifest: %w", err)
	}
	return nil
}
