package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/myaiplug/myaiplug-audioconvert/internal/convert"
	"github.com/myaiplug/myaiplug-audioconvert/internal/format"
)

// PrintInfo renders the metadata report for one audio file.
func PrintInfo(info *convert.Info) {
	channels := "mono"
	if info.Channels != 1 {
		channels = "stereo"
	}

	fmt.Println()
	fmt.Println(HeaderStyle.Render("Audio File Information:"))
	printRow("Duration", fmt.Sprintf("%.2f seconds", info.DurationSeconds))
	printRow("Channels", fmt.Sprintf("%d (%s)", info.Channels, channels))
	printRow("Sample Rate", fmt.Sprintf("%d Hz", info.SampleRate))
	printRow("Sample Width", fmt.Sprintf("%d bytes", info.SampleWidth))
	printRow("Frame Count", strconv.FormatInt(info.FrameCount, 10))
	printRow("File Size", fmt.Sprintf("%s bytes (%.2f MB)",
		GroupDigits(info.FileSize), float64(info.FileSize)/1024/1024))
}

// PrintFormats lists every registered format and its extension.
func PrintFormats(specs []format.Spec) {
	fmt.Println()
	fmt.Println(HeaderStyle.Render("Supported Audio Formats:"))
	for _, s := range specs {
		fmt.Printf("  • %s (%s)\n", ValueStyle.Render(strings.ToUpper(s.Name)), s.Extension)
	}
	fmt.Println()
}

func printRow(key, value string) {
	fmt.Printf("  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// GroupDigits formats n with thousands separators (e.g. 1234567 ->
// "1,234,567").
func GroupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
