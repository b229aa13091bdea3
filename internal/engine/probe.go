package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProbeInfo holds the parsed subset of ffprobe output the converter cares
// about: the container and its audio streams.
type ProbeInfo struct {
	FormatName   string
	Duration     float64
	Size         int64
	AudioStreams []AudioStream
}

// AudioStream holds the parsed properties of one audio stream.
type AudioStream struct {
	Index      int
	Codec      string
	Channels   int
	SampleRate int
}

// ParseProbeJSON converts raw ffprobe JSON output into a ProbeInfo.
// Exported for testing without a real ffprobe binary.
func ParseProbeJSON(data []byte) (*ProbeInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	info := &ProbeInfo{
		FormatName: raw.Format.FormatName,
		Duration:   parseFloat(raw.Format.Duration),
		Size:       parseInt64(raw.Format.Size),
	}
	for _, s := range raw.Streams {
		if s.CodecType != "audio" {
			continue
		}
		info.AudioStreams = append(info.AudioStreams, AudioStream{
			Index:      s.Index,
			Codec:      s.CodecName,
			Channels:   s.Channels,
			SampleRate: parseInt(s.SampleRate),
		})
	}
	return info, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

type ffprobeStream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Channels   int    `json:"channels"`
	SampleRate string `json:"sample_rate"`
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
