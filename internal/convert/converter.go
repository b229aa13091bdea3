// Package convert turns a conversion request into exactly one external
// transcode invocation, and reads back audio metadata. It owns input
// validation and export-parameter derivation; the actual decoding and
// encoding happen in the engine.
package convert

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/myaiplug/myaiplug-audioconvert/internal/config"
	"github.com/myaiplug/myaiplug-audioconvert/internal/engine"
	"github.com/myaiplug/myaiplug-audioconvert/internal/format"
)

// Request describes one conversion. It is consumed once and not retained.
type Request struct {
	// Input and Output are the source and destination paths.
	Input  string
	Output string

	// Format names the target format explicitly. When empty it is
	// inferred from Output's extension.
	Format string

	// Bitrate applies to compressed formats only (e.g. "192k", "320k").
	// Empty means config.DefaultBitrate.
	Bitrate string

	// SampleRate is the target rate in Hz; 0 keeps the source rate.
	SampleRate int

	// Channels is the target channel count, 1 or 2; 0 keeps the source
	// layout.
	Channels int
}

// Converter orchestrates conversions and metadata reads. It holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	engine engine.Engine
	log    zerolog.Logger
}

// New returns a Converter backed by eng.
func New(eng engine.Engine, log zerolog.Logger) *Converter {
	return &Converter{engine: eng, log: log}
}

// Convert runs one conversion and returns the output path. Validation
// failures surface as NotFoundError, InvalidInputError, InvalidFormatError
// or InvalidParameterError before any engine call; engine failures are
// wrapped in ConversionError with the cause attached.
func (c *Converter) Convert(req Request) (string, error) {
	if err := validateInputFile(req.Input); err != nil {
		return "", err
	}

	name := req.Format
	if name == "" {
		name = filepath.Ext(req.Output)
	}
	spec, ok := format.Lookup(name)
	if !ok {
		return "", &InvalidFormatError{
			Format:    format.Normalize(name),
			Supported: format.Names(),
		}
	}

	// The only filesystem side effect before the engine runs. Format
	// resolution has already succeeded at this point.
	if err := os.MkdirAll(filepath.Dir(req.Output), 0o755); err != nil {
		return "", &ConversionError{Err: err}
	}

	c.log.Info().
		Str("input", req.Input).
		Str("format", spec.Name).
		Msg("converting")

	stream, err := c.engine.Decode(req.Input)
	if err != nil {
		return "", &ConversionError{Err: err}
	}

	// Resample before remix; remixing after the rate change matches the
	// engine's native operation order.
	if req.SampleRate > 0 {
		c.log.Info().Int("sample_rate", req.SampleRate).Msg("setting sample rate")
		stream.Resample(req.SampleRate)
	}
	if req.Channels != 0 {
		if req.Channels != 1 && req.Channels != 2 {
			return "", &InvalidParameterError{Reason: "Channels must be 1 (mono) or 2 (stereo)"}
		}
		c.log.Info().Int("channels", req.Channels).Msg("setting channels")
		stream.Remix(req.Channels)
	}

	params := engine.ExportParams{
		Format: spec.Container,
		Codec:  spec.Codec,
	}
	if format.Lossy(spec.Name) {
		params.Bitrate = req.Bitrate
		if params.Bitrate == "" {
			params.Bitrate = config.DefaultBitrate
		}
	}

	if err := stream.Export(req.Output, params); err != nil {
		return "", &ConversionError{Err: err}
	}

	c.log.Info().Str("output", req.Output).Msg("conversion complete")
	return req.Output, nil
}

// validateInputFile checks that path exists, is a regular file and is
// readable. Shared by Convert and Info.
func validateInputFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Path: path}
		}
		return &InvalidInputError{Path: path, Reason: "File is not accessible"}
	}
	if !fi.Mode().IsRegular() {
		return &InvalidInputError{Path: path, Reason: "Path is not a file"}
	}

	f, err := os.Open(path)
	if err != nil {
		return &InvalidInputError{Path: path, Reason: "File is not readable"}
	}
	f.Close()
	return nil
}
