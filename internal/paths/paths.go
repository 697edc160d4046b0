// Package paths resolves where generated assets are written, relative to
// the output root.
package paths

import (
	"path/filepath"
)

// DefaultOutputRoot is the game project directory the assets belong to.
const DefaultOutputRoot = "flutter_board_game"

// ConfigFile is the settings file looked up in the working directory.
const ConfigFile = "boardgen.yaml"

// AssetsDir returns <root>/assets/
func AssetsDir(root string) string {
	return filepath.Join(root, "assets")
}

// AudioDir returns <root>/assets/audio/
func AudioDir(root string) string {
	return filepath.Join(AssetsDir(root), "audio")
}

// ImagesDir returns <root>/assets/images/
func ImagesDir(root string) string {
	return filepath.Join(AssetsDir(root), "images")
}

// AudioPath returns <root>/assets/audio/<name>
func AudioPath(root, name string) string {
	return filepath.Join(AudioDir(root), name)
}

// ImagePath returns <root>/assets/images/<rel>, where rel is a slash
// separated path such as "tiles/tile_start.png".
func ImagePath(root, rel string) string {
	return filepath.Join(ImagesDir(root), filepath.FromSlash(rel))
}

// ConfigPath returns <dir>/boardgen.yaml
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}
