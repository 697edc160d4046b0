package paths

import (
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	root := filepath.Join("out", "game")
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"AssetsDir", AssetsDir(root), filepath.Join("out", "game", "assets")},
		{"AudioDir", AudioDir(root), filepath.Join("out", "game", "assets", "audio")},
		{"ImagesDir", ImagesDir(root), filepath.Join("out", "game", "assets", "images")},
		{"AudioPath", AudioPath(root, "dice_roll.wav"), filepath.Join("out", "game", "assets", "audio", "dice_roll.wav")},
		{"ImagePath", ImagePath(root, "tiles/tile_start.png"), filepath.Join("out", "game", "assets", "images", "tiles", "tile_start.png")},
		{"ConfigPath", ConfigPath("proj"), filepath.Join("proj", "boardgen.yaml")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}
