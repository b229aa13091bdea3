package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Sentinel errors returned by CheckDeps when a required binary is missing.
var (
	ErrFFmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFFprobeNotFound = errors.New("ffprobe not found on PATH")
)

// CheckDeps verifies that ffmpeg and ffprobe are available. Decode calls it
// before probing so a missing installation surfaces as a single clear error
// instead of an obscure exec failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFFmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFFprobeNotFound
	}
	return nil
}

// FFmpeg implements Engine over the ffmpeg and ffprobe binaries.
type FFmpeg struct {
	log zerolog.Logger
}

// New returns an engine that logs through log. Pass zerolog.Nop() to
// disable logging.
func New(log zerolog.Logger) *FFmpeg {
	return &FFmpeg{log: log}
}

// Decode probes path and returns a stream handle for it. The file is not
// transcoded yet; a corrupt or non-audio file fails here because ffprobe
// cannot find an audio stream in it.
func (e *FFmpeg) Decode(path string) (Stream, error) {
	if err := CheckDeps(); err != nil {
		return nil, err
	}

	out, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", path, err)
	}

	info, err := ParseProbeJSON([]byte(out))
	if err != nil {
		return nil, err
	}
	if len(info.AudioStreams) == 0 {
		return nil, fmt.Errorf("no audio stream found in %q", path)
	}

	src := info.AudioStreams[0]
	e.log.Debug().
		Str("path", path).
		Str("codec", src.Codec).
		Int("channels", src.Channels).
		Int("sample_rate", src.SampleRate).
		Msg("decoded source stream")

	return &ffstream{path: path, log: e.log}, nil
}

// ffstream accumulates transforms for one source file and runs a single
// ffmpeg invocation at Export time.
type ffstream struct {
	path       string
	sampleRate int
	channels   int
	log        zerolog.Logger
}

func (s *ffstream) Resample(rate int) { s.sampleRate = rate }

func (s *ffstream) Remix(channels int) { s.channels = channels }

func (s *ffstream) Export(path string, p ExportParams) error {
	args := outputArgs(p, s.sampleRate, s.channels)

	s.log.Debug().
		Str("input", s.path).
		Str("output", path).
		Interface("args", args).
		Msg("running ffmpeg export")

	cmd := ffmpeg.Input(s.path).
		Output(path, args).
		OverWriteOutput().
		Compile()

	// Captured silently; ffmpeg reports failures on stderr.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg export: %w: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg export: %w", err)
	}
	return nil
}

// outputArgs derives the ffmpeg output arguments for one export. Only the
// first audio stream is mapped so embedded cover art never leaks into the
// output container.
func outputArgs(p ExportParams, sampleRate, channels int) ffmpeg.KwArgs {
	args := ffmpeg.KwArgs{
		"f":   p.Format,
		"map": "0:a",
	}
	if p.Codec != "" {
		args["c:a"] = p.Codec
	}
	if p.Bitrate != "" {
		args["b:a"] = p.Bitrate
	}
	if sampleRate > 0 {
		args["ar"] = sampleRate
	}
	if channels > 0 {
		args["ac"] = channels
	}
	return args
}

// lastLine returns the last non-empty line of ffmpeg's stderr, which is
// where it reports the actual failure.
func lastLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
