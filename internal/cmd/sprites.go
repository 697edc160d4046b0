package cmd

import (
	"fmt"
	"os"

	"github.com/minicodemonkey/boardgen/internal/manifest"
	"github.com/minicodemonkey/boardgen/internal/paths"
	"github.com/minicodemonkey/boardgen/internal/sprite"
	"go.uber.org/zap"
)

var spriteKindTitles = map[manifest.SpriteKind]string{
	manifest.SpriteTile:      "tile sprites",
	manifest.SpriteCharacter: "character sprites",
	manifest.SpriteDice:      "dice sprites",
	manifest.SpriteUI:        "UI elements",
}

// RunSprites writes every PNG file in the sprite manifest. The first
// failure stops the run.
func RunSprites(opts GenerateOptions) error {
	opts = opts.withDefaults()
	res, err := generateSprites(opts)
	if err != nil {
		return err
	}
	return printSummary(opts.Out, res)
}

func generateSprites(opts GenerateOptions) (*Result, error) {
	log := opts.Logger
	log.Info("Generating pixel art assets...")

	assets := manifest.Sprites()

	// Create directories up front
	created := map[string]bool{}
	for _, asset := range assets {
		dir := paths.ImagePath(opts.OutputDir, asset.Dir())
		if created[dir] {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create image directory: %w", err)
		}
		created[dir] = true
	}

	res := newResult("sprites")
	for _, asset := range assets {
		img, err := asset.Render()
		if err != nil {
			return nil, fmt.Errorf("failed to draw %s: %w", asset.File, err)
		}

		path := paths.ImagePath(opts.OutputDir, asset.File)
		if err := sprite.SavePNG(path, img); err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		b := img.Bounds()
		log.Debug("Drawn",
			zap.String("file", asset.File),
			zap.String("kind", string(asset.Kind)),
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()),
		)
		log.Info("Created", zap.String("path", path), zap.Int64("bytes", info.Size()))
		res.add(spriteKindTitles[asset.Kind], info.Size())
	}

	return res, nil
}
