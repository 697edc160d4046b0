package manifest

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestAudioManifest(t *testing.T) {
	assets := Audio()
	if len(assets) != 19 {
		t.Fatalf("expected 19 audio assets, got %d", len(assets))
	}

	groups := map[AudioGroup]int{}
	seen := map[string]bool{}
	for _, a := range assets {
		if seen[a.File] {
			t.Errorf("duplicate audio file %s", a.File)
		}
		seen[a.File] = true
		groups[a.Group]++
		if !strings.HasSuffix(a.File, ".wav") {
			t.Errorf("expected .wav file, got %s", a.File)
		}
	}
	if groups[GroupMusic] != 3 || groups[GroupEffects] != 12 || groups[GroupUI] != 4 {
		t.Errorf("unexpected group counts: %v", groups)
	}
}

func TestAudioRenderLengths(t *testing.T) {
	want := map[string]int{
		"menu_theme.wav":     8 * 22050,
		"gameplay_theme.wav": 12 * 17640,
		"victory_theme.wav":  8 * 13230,
		"seed_plant.wav":     8820,
		"energy_full.wav":    22050,
		"dice_roll.wav":      35280,
		"tile_branch.wav":    2 * 8820,
		"tile_finish.wav":    4 * 11025,
		"button_hover.wav":   2205,
		"notification.wav":   2 * 4410,
	}
	for _, a := range Audio() {
		samples, err := a.Render(SampleRate)
		if err != nil {
			t.Fatalf("%s: render failed: %v", a.File, err)
		}
		if n, ok := want[a.File]; ok && len(samples) != n {
			t.Errorf("%s: expected %d samples, got %d", a.File, n, len(samples))
		}
		if len(samples) == 0 {
			t.Errorf("%s: rendered no samples", a.File)
		}
	}
}

func TestAudioRenderErrors(t *testing.T) {
	if _, err := (AudioAsset{Kind: "fm"}).Render(SampleRate); err == nil {
		t.Error("expected error for unknown kind")
	}
	bad := AudioAsset{Kind: KindSequence, Parts: []AudioAsset{{Kind: KindTone, Duration: 1}}}
	if _, err := bad.Render(SampleRate); err == nil {
		t.Error("expected error for a tone without frequency")
	}
}

func TestSpriteManifest(t *testing.T) {
	assets := Sprites()
	if len(assets) != 20 {
		t.Fatalf("expected 20 sprites, got %d", len(assets))
	}

	dirs := map[string]int{}
	for _, s := range assets {
		dirs[s.Dir()]++
		img, err := s.Render()
		if err != nil {
			t.Fatalf("%s: render failed: %v", s.File, err)
		}
		if s.Size > 0 && img.Bounds().Dx() != s.Size {
			t.Errorf("%s: expected width %d, got %d", s.File, s.Size, img.Bounds().Dx())
		}
	}
	if dirs[TilesDir] != 6 || dirs[CharactersDir] != 5 || dirs[UIDir] != 9 {
		t.Errorf("unexpected directory counts: %v", dirs)
	}

	if assets[0].File != "tiles/tile_start.png" {
		t.Errorf("expected first sprite tiles/tile_start.png, got %s", assets[0].File)
	}
	if assets[len(assets)-1].File != "ui/button_bg.png" {
		t.Errorf("expected last sprite ui/button_bg.png, got %s", assets[len(assets)-1].File)
	}
}

func TestSpriteRenderErrors(t *testing.T) {
	if _, err := (SpriteAsset{Kind: SpriteUI, Element: "slider"}).Render(); err == nil {
		t.Error("expected error for unknown UI element")
	}
	if _, err := (SpriteAsset{Kind: "icon"}).Render(); err == nil {
		t.Error("expected error for unknown sprite kind")
	}
}

func TestYAML(t *testing.T) {
	data, err := YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	text := string(data)
	for _, want := range []string{"sampleRate: 44100", "menu_theme.wav", "kind: melody", "tiles/tile_finish.png", "- REST"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected manifest YAML to contain %q", want)
		}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("manifest YAML does not parse: %v", err)
	}
	if len(doc.Audio) != 19 || len(doc.Sprites) != 20 {
		t.Errorf("expected 19 audio and 20 sprites, got %d and %d", len(doc.Audio), len(doc.Sprites))
	}
	if len(doc.Palette) != 12 {
		t.Errorf("expected 12 palette colors, got %d", len(doc.Palette))
	}
	for name, want := range map[string]string{
		"primary_green": "#4caf50",
		"dark_green":    "#2e7d32",
		"brown":         "#8b4513",
		"sky_blue":      "#87ceeb",
	} {
		if got := doc.Palette[name]; got != want {
			t.Errorf("palette %s: expected %s, got %s", name, want, got)
		}
	}
}
