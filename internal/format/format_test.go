package format

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mp3", "mp3"},
		{"MP3", "mp3"},
		{".mp3", "mp3"},
		{".FLAC", "flac"},
		{"Ogg", "ogg"},
		{"", ""},
		{".", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookupAllSpellings(t *testing.T) {
	// Every registered name must resolve regardless of case or a leading dot.
	for _, spec := range List() {
		spellings := []string{
			spec.Name,
			"." + spec.Name,
			spec.Extension,
			strings.ToUpper(spec.Name),
			"." + strings.ToUpper(spec.Name),
		}
		for _, spelling := range spellings {
			got, ok := Lookup(spelling)
			if !ok {
				t.Errorf("Lookup(%q) failed, want %q", spelling, spec.Name)
				continue
			}
			if got != spec {
				t.Errorf("Lookup(%q) = %+v, want %+v", spelling, got, spec)
			}
		}
	}
}

func TestLookupAACAlias(t *testing.T) {
	spec, ok := Lookup("aac")
	if !ok {
		t.Fatal("Lookup(aac) failed, want m4a entry")
	}
	if spec.Name != "m4a" || spec.Container != "ipod" || spec.Codec != "aac" {
		t.Errorf("Lookup(aac) = %+v, want the m4a/ipod entry", spec)
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"xyz", ".xyz", "opus", "wma", ""} {
		if spec, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) = %+v, want not-found", name, spec)
		}
	}
}

func TestListOrder(t *testing.T) {
	want := []string{"mp3", "wav", "ogg", "flac", "m4a"}
	specs := List()
	if len(specs) != len(want) {
		t.Fatalf("List() returned %d entries, want %d", len(specs), len(want))
	}
	for i, s := range specs {
		if s.Name != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, s.Name, want[i])
		}
		if s.Codec == "" || s.Container == "" {
			t.Errorf("List()[%d] (%q) has empty codec or container", i, s.Name)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{"mp3", "wav", "ogg", "flac", "m4a"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestLossy(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"mp3", true},
		{"ogg", true},
		{"m4a", true},
		{"aac", true}, // alias of m4a
		{"MP3", true},
		{"wav", false},
		{"flac", false},
		{".flac", false},
		{"xyz", false},
	}

	for _, tt := range tests {
		if got := Lossy(tt.name); got != tt.want {
			t.Errorf("Lossy(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
