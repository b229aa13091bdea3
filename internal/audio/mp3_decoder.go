package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder implements Decoder for MP3 files.
type MP3Decoder struct {
	decoder *mp3.Decoder
	file    *os.File
	buf     []byte
}

// NewMP3Decoder opens path as an MP3 file.
func NewMP3Decoder(path string) (*MP3Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create MP3 decoder: %w", err)
	}

	return &MP3Decoder{
		decoder: decoder,
		file:    f,
		// go-mp3 always outputs interleaved 16-bit stereo, 4 bytes per frame.
		buf: make([]byte, chunkFrames*4),
	}, nil
}

// ReadFrames decodes the next block of MP3 data.
func (d *MP3Decoder) ReadFrames() (int, error) {
	n, err := d.decoder.Read(d.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read MP3 data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n / 4, nil
}

// SampleRate returns the sample rate.
func (d *MP3Decoder) SampleRate() int {
	return d.decoder.SampleRate()
}

// NumChannels returns the number of audio channels. go-mp3 upmixes mono
// sources, so this is always 2.
func (d *MP3Decoder) NumChannels() int {
	return 2
}

// SampleWidth returns the bytes per sample per channel.
func (d *MP3Decoder) SampleWidth() int {
	return 2
}

// Close closes the decoder and releases resources.
func (d *MP3Decoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
