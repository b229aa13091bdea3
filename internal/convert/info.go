package convert

import (
	"io"
	"os"

	"github.com/myaiplug/myaiplug-audioconvert/internal/audio"
)

// Info is a read-only snapshot of one audio file. Duration and FrameCount
// come from decoding the whole stream, not from container headers, so they
// are exact for variable-bitrate sources too.
type Info struct {
	DurationSeconds float64
	DurationMS      int64
	Channels        int
	SampleRate      int
	SampleWidth     int
	FrameCount      int64
	FrameWidth      int
	FileSize        int64
}

// Info extracts metadata from the file at path. Validation failures surface
// as NotFoundError or InvalidInputError; decode failures are wrapped in
// ReadError. The file is never modified.
func (c *Converter) Info(path string) (*Info, error) {
	if err := validateInputFile(path); err != nil {
		return nil, err
	}

	// Size comes from the filesystem, independent of decoding.
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	c.log.Info().Str("path", path).Msg("reading audio info")

	dec, err := audio.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer dec.Close()

	var frames int64
	for {
		n, err := dec.ReadFrames()
		frames += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
	}

	rate := dec.SampleRate()
	seconds := float64(frames) / float64(rate)

	return &Info{
		DurationSeconds: seconds,
		DurationMS:      int64(seconds * 1000),
		Channels:        dec.NumChannels(),
		SampleRate:      rate,
		SampleWidth:     dec.SampleWidth(),
		FrameCount:      frames,
		FrameWidth:      dec.SampleWidth() * dec.NumChannels(),
		FileSize:        fi.Size(),
	}, nil
}
