package engine

import "testing"

func TestOutputArgsFull(t *testing.T) {
	args := outputArgs(ExportParams{Format: "mp3", Codec: "libmp3lame", Bitrate: "192k"}, 48000, 1)

	want := map[string]interface{}{
		"f":   "mp3",
		"map": "0:a",
		"c:a": "libmp3lame",
		"b:a": "192k",
		"ar":  48000,
		"ac":  1,
	}
	if len(args) != len(want) {
		t.Fatalf("got %d args (%v), want %d", len(args), args, len(want))
	}
	for k, v := range want {
		if args[k] != v {
			t.Errorf("args[%q] = %v, want %v", k, args[k], v)
		}
	}
}

func TestOutputArgsLossless(t *testing.T) {
	// Lossless exports carry no bitrate and no transforms by default.
	args := outputArgs(ExportParams{Format: "flac", Codec: "flac"}, 0, 0)

	if _, ok := args["b:a"]; ok {
		t.Error("bitrate present in lossless export args")
	}
	if _, ok := args["ar"]; ok {
		t.Error("sample rate present without a resample request")
	}
	if _, ok := args["ac"]; ok {
		t.Error("channel count present without a remix request")
	}
	if args["f"] != "flac" || args["c:a"] != "flac" {
		t.Errorf("args = %v, want f=flac c:a=flac", args)
	}
}

func TestOutputArgsEmptyCodec(t *testing.T) {
	args := outputArgs(ExportParams{Format: "ogg"}, 0, 0)
	if _, ok := args["c:a"]; ok {
		t.Error("empty codec must not produce a c:a argument")
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n\n", ""},
		{"one line", "one line"},
		{"noise\nActual error: boom\n", "Actual error: boom"},
		{"error\n\n  \n", "error"},
	}

	for _, tt := range tests {
		if got := lastLine(tt.in); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
