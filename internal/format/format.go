// Package format is the canonical source of truth for the supported output
// formats and their encode parameters.
package format

import "strings"

// Spec describes one supported output format: the file extension it
// produces, the encoder codec handed to the transcoding engine, and the
// container (muxer) name. The container is not always the same as the
// format name ("ipod" is the m4a/mp4 muxer).
type Spec struct {
	Name      string
	Extension string
	Codec     string
	Container string
}

// registry holds every supported format in registration order. The table is
// never mutated after init.
var registry = []Spec{
	{Name: "mp3", Extension: ".mp3", Codec: "libmp3lame", Container: "mp3"},
	{Name: "wav", Extension: ".wav", Codec: "pcm_s16le", Container: "wav"},
	{Name: "ogg", Extension: ".ogg", Codec: "libvorbis", Container: "ogg"},
	{Name: "flac", Extension: ".flac", Codec: "flac", Container: "flac"},
	{Name: "m4a", Extension: ".m4a", Codec: "aac", Container: "ipod"},
}

// aliases maps accepted request names onto registry entries. "aac" has no
// table entry of its own: AAC audio is always written into the m4a
// container.
var aliases = map[string]string{
	"aac": "m4a",
}

// lossy marks the compressed formats, the only ones that take a bitrate
// parameter. ffmpeg errors or silently ignores -b:a for wav and flac.
var lossy = map[string]bool{
	"mp3": true,
	"ogg": true,
	"m4a": true,
}

var byName = func() map[string]Spec {
	m := make(map[string]Spec, len(registry))
	for _, s := range registry {
		m[s.Name] = s
	}
	return m
}()

// Normalize lowercases a format name and strips a single leading dot, so
// "MP3", ".mp3" and "mp3" all refer to the same entry.
func Normalize(name string) string {
	return strings.TrimPrefix(strings.ToLower(name), ".")
}

// resolve normalizes name and follows aliases to a registry key.
func resolve(name string) string {
	n := Normalize(name)
	if target, ok := aliases[n]; ok {
		return target
	}
	return n
}

// Lookup resolves name (in any accepted spelling) to its Spec. The second
// return value is false when the format is not supported.
func Lookup(name string) (Spec, bool) {
	s, ok := byName[resolve(name)]
	return s, ok
}

// List returns every registered format in registration order.
func List() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered format names in registration order, for
// error messages and help surfaces.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, s := range registry {
		names = append(names, s.Name)
	}
	return names
}

// Lossy reports whether name refers to a compressed format.
func Lossy(name string) bool {
	return lossy[resolve(name)]
}
