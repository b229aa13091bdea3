package config

// Conversion defaults
const (
	// DefaultBitrate is applied to compressed formats when the caller
	// does not supply one.
	DefaultBitrate = "192k"
)

// Metadata extraction settings
const (
	// FallbackCodec is the PCM codec used when a source format has no
	// native Go decoder and must go through ffmpeg first.
	FallbackCodec = "pcm_s16le"

	// FallbackSampleWidth is the decoded sample width in bytes produced
	// by FallbackCodec.
	FallbackSampleWidth = 2
)
