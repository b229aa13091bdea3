// Package engine wraps the external transcoding engine (ffmpeg). It is the
// only package that runs the engine; everything above it works in terms of
// the Engine and Stream interfaces so the orchestrator can be exercised
// without a real binary.
package engine

// ExportParams carries the derived encode parameters for one export call.
// Format is the container/muxer name and is always set; Codec and Bitrate
// are passed through only when non-empty.
type ExportParams struct {
	Format  string
	Codec   string
	Bitrate string
}

// Engine opens source files for transcoding.
type Engine interface {
	// Decode validates that path holds a decodable audio stream and
	// returns a handle for it. The heavy lifting is deferred: transforms
	// accumulate on the handle and run in a single engine invocation at
	// Export time.
	Decode(path string) (Stream, error)
}

// Stream is one decoded audio source plus its pending transforms.
type Stream interface {
	// Resample requests a target sample rate in Hz for the export.
	Resample(rate int)

	// Remix requests a target channel count (1 or 2) for the export.
	Remix(channels int)

	// Export writes the stream to path with the given parameters. It
	// blocks until the engine finishes and may leave a partial file
	// behind on failure.
	Export(path string, p ExportParams) error
}
