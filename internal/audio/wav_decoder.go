package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVDecoder implements Decoder for WAV files.
type WAVDecoder struct {
	decoder    *wav.Decoder
	file       *os.File
	buf        *audio.IntBuffer
	sampleRate int
	bitDepth   int
	numChans   int
}

// NewWAVDecoder opens path as a WAV file.
func NewWAVDecoder(path string) (*WAVDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("invalid WAV file")
	}

	// Get format info without reading all samples
	if err := decoder.FwdToPCM(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to seek to PCM data: %w", err)
	}

	numChans := int(decoder.NumChans)
	return &WAVDecoder{
		decoder: decoder,
		file:    f,
		buf: &audio.IntBuffer{
			Data: make([]int, chunkFrames*numChans),
			Format: &audio.Format{
				NumChannels: numChans,
				SampleRate:  int(decoder.SampleRate),
			},
		},
		sampleRate: int(decoder.SampleRate),
		bitDepth:   int(decoder.BitDepth),
		numChans:   numChans,
	}, nil
}

// ReadFrames decodes the next block of PCM data.
func (d *WAVDecoder) ReadFrames() (int, error) {
	n, err := d.decoder.PCMBuffer(d.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read PCM buffer: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	// n counts interleaved samples across all channels.
	return n / d.numChans, nil
}

// SampleRate returns the sample rate.
func (d *WAVDecoder) SampleRate() int {
	return d.sampleRate
}

// NumChannels returns the number of audio channels.
func (d *WAVDecoder) NumChannels() int {
	return d.numChans
}

// SampleWidth returns the bytes per sample per channel.
func (d *WAVDecoder) SampleWidth() int {
	return d.bitDepth / 8
}

// Close closes the decoder and releases resources.
func (d *WAVDecoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
