package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/myaiplug/myaiplug-audioconvert/internal/config"
	"github.com/myaiplug/myaiplug-audioconvert/internal/engine"
)

// FFmpegDecoder implements Decoder for formats without a native Go decoder
// (OGG, M4A/AAC and anything else ffmpeg understands). The source is
// transcoded to a temporary 16-bit WAV once, then read through WAVDecoder.
type FFmpegDecoder struct {
	wav    *WAVDecoder
	tmpDir string
}

// NewFFmpegDecoder decodes path through ffmpeg into a temporary WAV file.
func NewFFmpegDecoder(path string) (*FFmpegDecoder, error) {
	tmpDir, err := os.MkdirTemp("", "audioconvert-")
	if err != nil {
		return nil, err
	}
	wavPath := filepath.Join(tmpDir, "decoded.wav")

	eng := engine.New(zerolog.Nop())
	stream, err := eng.Decode(path)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("ffmpeg decode: %w", err)
	}
	params := engine.ExportParams{Format: "wav", Codec: config.FallbackCodec}
	if err := stream.Export(wavPath, params); err != nil {
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("ffmpeg decode: %w", err)
	}

	w, err := NewWAVDecoder(wavPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}
	return &FFmpegDecoder{wav: w, tmpDir: tmpDir}, nil
}

// ReadFrames decodes the next block of the intermediate WAV.
func (d *FFmpegDecoder) ReadFrames() (int, error) {
	return d.wav.ReadFrames()
}

// SampleRate returns the sample rate.
func (d *FFmpegDecoder) SampleRate() int {
	return d.wav.SampleRate()
}

// NumChannels returns the number of audio channels.
func (d *FFmpegDecoder) NumChannels() int {
	return d.wav.NumChannels()
}

// SampleWidth returns the bytes per sample per channel of the decoded PCM.
func (d *FFmpegDecoder) SampleWidth() int {
	return d.wav.SampleWidth()
}

// Close closes the decoder and removes the intermediate file.
func (d *FFmpegDecoder) Close() error {
	err := d.wav.Close()
	os.RemoveAll(d.tmpDir)
	return err
}
