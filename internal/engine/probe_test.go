package engine

import "testing"

// Captured from `ffprobe -print_format json -show_format -show_streams`
// against a small stereo MP3, trimmed to the fields we parse.
const sampleProbeJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_type": "audio",
      "sample_rate": "44100",
      "channels": 2
    },
    {
      "index": 1,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 500,
      "height": 500
    }
  ],
  "format": {
    "filename": "sample.mp3",
    "nb_streams": 2,
    "format_name": "mp3",
    "duration": "1.044898",
    "size": "17747"
  }
}`

func TestParseProbeJSON(t *testing.T) {
	info, err := ParseProbeJSON([]byte(sampleProbeJSON))
	if err != nil {
		t.Fatalf("ParseProbeJSON failed: %v", err)
	}

	if info.FormatName != "mp3" {
		t.Errorf("FormatName = %q, want %q", info.FormatName, "mp3")
	}
	if info.Duration < 1.0 || info.Duration > 1.1 {
		t.Errorf("Duration = %f, want ~1.04", info.Duration)
	}
	if info.Size != 17747 {
		t.Errorf("Size = %d, want 17747", info.Size)
	}

	// The attached-picture video stream must not be reported as audio.
	if len(info.AudioStreams) != 1 {
		t.Fatalf("got %d audio streams, want 1", len(info.AudioStreams))
	}
	s := info.AudioStreams[0]
	if s.Codec != "mp3" || s.Channels != 2 || s.SampleRate != 44100 {
		t.Errorf("audio stream = %+v, want mp3/2ch/44100Hz", s)
	}
}

func TestParseProbeJSONNoAudio(t *testing.T) {
	info, err := ParseProbeJSON([]byte(`{"streams": [], "format": {"format_name": "image2"}}`))
	if err != nil {
		t.Fatalf("ParseProbeJSON failed: %v", err)
	}
	if len(info.AudioStreams) != 0 {
		t.Errorf("got %d audio streams, want 0", len(info.AudioStreams))
	}
}

func TestParseProbeJSONInvalid(t *testing.T) {
	if _, err := ParseProbeJSON([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}
