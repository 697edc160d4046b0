// Package wavfile serializes 16-bit PCM samples into the mono WAV files the
// game loads: a 44-byte RIFF/WAVE header followed by little-endian samples.
package wavfile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	HeaderSize    = 44
	NumChannels   = 1
	BitsPerSample = 16
	BlockAlign    = NumChannels * BitsPerSample / 8

	pcmFormat = 1
)

// Size returns the byte length of a file holding n samples.
func Size(n int) int {
	return HeaderSize + n*BlockAlign
}

// Encode writes samples to w as a mono 16-bit PCM WAV stream. w must be
// positioned at the start of the stream; the header sizes are patched in
// once all samples are written.
func Encode(w io.WriteSeeker, samples []int16, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, sampleRate, BitsPerSample, NumChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: NumChannels},
		SourceBitDepth: BitsPerSample,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// Write creates (or truncates) path and encodes samples into it.
func Write(path string, samples []int16, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, samples, sampleRate); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
