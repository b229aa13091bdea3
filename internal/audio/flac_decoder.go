package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
)

// FLACDecoder implements Decoder for FLAC files.
type FLACDecoder struct {
	stream *flac.Stream
	file   *os.File
}

// NewFLACDecoder opens path as a FLAC file. The StreamInfo block supplies
// the format; samples are still decoded frame by frame so the reported
// counts reflect the actual stream.
func NewFLACDecoder(path string) (*FLACDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create FLAC decoder: %w", err)
	}

	return &FLACDecoder{stream: stream, file: f}, nil
}

// ReadFrames parses the next FLAC frame.
func (d *FLACDecoder) ReadFrames() (int, error) {
	frame, err := d.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("failed to parse FLAC frame: %w", err)
	}
	return len(frame.Subframes[0].Samples), nil
}

// SampleRate returns the sample rate.
func (d *FLACDecoder) SampleRate() int {
	return int(d.stream.Info.SampleRate)
}

// NumChannels returns the number of audio channels.
func (d *FLACDecoder) NumChannels() int {
	return int(d.stream.Info.NChannels)
}

// SampleWidth returns the bytes per sample per channel.
func (d *FLACDecoder) SampleWidth() int {
	return int(d.stream.Info.BitsPerSample) / 8
}

// Close closes the decoder and releases resources.
func (d *FLACDecoder) Close() error {
	if d.stream != nil {
		d.stream.Close()
	}
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
