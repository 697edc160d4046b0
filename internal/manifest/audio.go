// Package manifest lists every asset the generator writes, with the fixed
// parameters each one is rendered from.
package manifest

import (
	"fmt"

	"github.com/minicodemonkey/boardgen/internal/synth"
)

// SampleRate is the rate every audio asset is rendered at.
const SampleRate = synth.DefaultSampleRate

// AudioKind selects the generator for an audio asset.
type AudioKind string

const (
	KindTone     AudioKind = "tone"
	KindChord    AudioKind = "chord"
	KindNoise    AudioKind = "noise"
	KindMelody   AudioKind = "melody"
	KindSequence AudioKind = "sequence"
)

// AudioGroup is the section an asset belongs to in the run summary.
type AudioGroup string

const (
	GroupMusic   AudioGroup = "music"
	GroupEffects AudioGroup = "effects"
	GroupUI      AudioGroup = "ui"
)

// AudioAsset describes one WAV file. Duration is per note for melodies.
// Sequences play Parts back to back.
type AudioAsset struct {
	File        string       `yaml:"file,omitempty"`
	Group       AudioGroup   `yaml:"group,omitempty"`
	Kind        AudioKind    `yaml:"kind"`
	Frequency   float64      `yaml:"frequency,omitempty"`
	Frequencies []float64    `yaml:"frequencies,omitempty"`
	Notes       []string     `yaml:"notes,omitempty"`
	Duration    float64      `yaml:"duration"`
	Amplitude   float64      `yaml:"amplitude,omitempty"`
	Parts       []AudioAsset `yaml:"parts,omitempty"`
}

// Render generates the asset's samples.
func (a AudioAsset) Render(sampleRate int) ([]float64, error) {
	switch a.Kind {
	case KindTone:
		return synth.Tone(synth.ToneParams{
			Frequency:  a.Frequency,
			Duration:   a.Duration,
			SampleRate: sampleRate,
			Amplitude:  a.Amplitude,
		})
	case KindChord:
		return synth.Chord(synth.ChordParams{
			Frequencies: a.Frequencies,
			Duration:    a.Duration,
			SampleRate:  sampleRate,
			Amplitude:   a.Amplitude,
		})
	case KindNoise:
		return synth.Noise(synth.NoiseParams{
			Duration:   a.Duration,
			SampleRate: sampleRate,
			Amplitude:  a.Amplitude,
		})
	case KindMelody:
		return synth.Melody(synth.MelodyParams{
			Notes:        a.Notes,
			NoteDuration: a.Duration,
			SampleRate:   sampleRate,
		})
	case KindSequence:
		parts := make([][]float64, 0, len(a.Parts))
		for i, p := range a.Parts {
			samples, err := p.Render(sampleRate)
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", i, err)
			}
			parts = append(parts, samples)
		}
		return synth.Concat(parts...), nil
	}
	return nil, fmt.Errorf("unknown audio kind %q", a.Kind)
}

func tone(freq, duration, amplitude float64) AudioAsset {
	return AudioAsset{Kind: KindTone, Frequency: freq, Duration: duration, Amplitude: amplitude}
}

// Audio returns the audio manifest in generation order. File names are
// relative to the audio directory.
func Audio() []AudioAsset {
	return []AudioAsset{
		// Background music.
		{File: "menu_theme.wav", Group: GroupMusic, Kind: KindMelody, Duration: 0.5,
			Notes: []string{"C", "E", "G", "C5", "G", "E", "C", synth.Rest}},
		{File: "gameplay_theme.wav", Group: GroupMusic, Kind: KindMelody, Duration: 0.4,
			Notes: []string{"G", "A", "B", "C5", "B", "A", "G", "F", "E", "D", "C", synth.Rest}},
		{File: "victory_theme.wav", Group: GroupMusic, Kind: KindMelody, Duration: 0.3,
			Notes: []string{"C", "E", "G", "C5", "C5", "G", "E", "C"}},

		// Sound effects.
		withFile(tone(800, 0.2, 0.4), "seed_plant.wav", GroupEffects),
		{File: "energy_gain.wav", Group: GroupEffects, Kind: KindChord, Frequencies: []float64{400, 500, 600}, Duration: 0.3},
		{File: "energy_full.wav", Group: GroupEffects, Kind: KindChord, Frequencies: []float64{523, 659, 784}, Duration: 0.5},
		{File: "dice_roll.wav", Group: GroupEffects, Kind: KindNoise, Duration: 0.8, Amplitude: 0.2},
		withFile(tone(150, 0.1, 0.6), "dice_land.wav", GroupEffects),
		withFile(tone(200, 0.1, 0.3), "footstep_1.wav", GroupEffects),
		withFile(tone(180, 0.1, 0.3), "footstep_2.wav", GroupEffects),
		withFile(tone(300, 0.15, 0.2), "tile_normal.wav", GroupEffects),
		{File: "tile_obstacle.wav", Group: GroupEffects, Kind: KindNoise, Duration: 0.3, Amplitude: 0.4},
		{File: "tile_bonus.wav", Group: GroupEffects, Kind: KindChord, Frequencies: []float64{523, 659, 784, 988}, Duration: 0.4},
		{File: "tile_branch.wav", Group: GroupEffects, Kind: KindSequence,
			Parts: []AudioAsset{tone(400, 0.2, 0.3), tone(500, 0.2, 0.3)}},
		{File: "tile_finish.wav", Group: GroupEffects, Kind: KindMelody, Duration: 0.25,
			Notes: []string{"C", "E", "G", "C5"}},

		// UI sounds.
		withFile(tone(600, 0.05, 0.2), "button_hover.wav", GroupUI),
		withFile(tone(800, 0.08, 0.4), "button_click.wav", GroupUI),
		{File: "menu_select.wav", Group: GroupUI, Kind: KindChord, Frequencies: []float64{400, 600}, Duration: 0.15},
		{File: "notification.wav", Group: GroupUI, Kind: KindSequence,
			Parts: []AudioAsset{tone(1000, 0.1, 0.3), tone(800, 0.1, 0.3)}},
	}
}

func withFile(a AudioAsset, file string, group AudioGroup) AudioAsset {
	a.File = file
	a.Group = group
	return a
}
