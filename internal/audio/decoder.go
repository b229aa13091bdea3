// Package audio provides per-format decoders for metadata extraction. The
// info reporter decodes files end to end through these, so frame counts and
// durations are exact rather than estimated from headers.
package audio

import (
	"path/filepath"
	"strings"
)

// chunkFrames is how many frames a decoder consumes per ReadFrames call.
const chunkFrames = 8192

// Decoder is a full-decode reader over one audio file.
type Decoder interface {
	// ReadFrames decodes the next block and reports how many frames it
	// held. Returns io.EOF once the stream is exhausted.
	ReadFrames() (int, error)

	// SampleRate returns the decoded sample rate in Hz.
	SampleRate() int

	// NumChannels returns the decoded channel count.
	NumChannels() int

	// SampleWidth returns the decoded width of one sample of one
	// channel, in bytes.
	SampleWidth() int

	// Close releases the decoder's resources.
	Close() error
}

// Open picks a decoder for path by extension. WAV, MP3 and FLAC decode
// natively; everything else goes through the ffmpeg fallback.
func Open(path string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return NewWAVDecoder(path)
	case ".mp3":
		return NewMP3Decoder(path)
	case ".flac":
		return NewFLACDecoder(path)
	default:
		return NewFFmpegDecoder(path)
	}
}
