package format_test

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/auth-platform/phonegen/format"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  format.Name
	}{
		{"canonical", "toll_free", format.TollFree},
		{"upper case", "MOBILE", format.Mobile},
		{"spaces", "Toll Free", format.TollFree},
		{"hyphens", "toll-free", format.TollFree},
		{"surrounding whitespace", "  voip  ", format.Voip},
		{"mixed", "No-International Dialling", format.NoInternationalDialling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.Parse(tt.label)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseInvalidLabel(t *testing.T) {
	_, err := format.Parse("not_a_real_format")
	if err == nil {
		t.Fatal("expected error for unknown label")
	}
	if !errors.Is(err, format.ErrInvalidFormatName) {
		t.Errorf("expected ErrInvalidFormatName, got %v", err)
	}
	if !strings.Contains(err.Error(), "not_a_real_format") {
		t.Errorf("error should name the offending label, got %q", err.Error())
	}

	var nameErr *format.InvalidNameError
	if !errors.As(err, &nameErr) {
		t.Fatal("expected *InvalidNameError")
	}
	if nameErr.Label != "not_a_real_format" {
		t.Errorf("expected label to be preserved, got %q", nameErr.Label)
	}
}

func TestParseAllFailsOnFirstInvalid(t *testing.T) {
	_, err := format.ParseAll([]string{"mobile", "bogus", "pager"})
	if !errors.Is(err, format.ErrInvalidFormatName) {
		t.Errorf("expected ErrInvalidFormatName, got %v", err)
	}
}

func TestAll(t *testing.T) {
	all := format.All()
	if len(all) != 17 {
		t.Fatalf("expected 17 formats, got %d", len(all))
	}
	if all[0] != format.GeneralDesc {
		t.Errorf("expected general_desc first, got %q", all[0])
	}
	if all[len(all)-1] != format.NoInternationalDialling {
		t.Errorf("expected no_international_dialling last, got %q", all[len(all)-1])
	}

	// Mutating the returned slice must not leak into the vocabulary.
	all[0] = "corrupted"
	if format.All()[0] != format.GeneralDesc {
		t.Error("All must return a fresh copy")
	}
}

func TestValid(t *testing.T) {
	for _, name := range format.All() {
		if !format.Valid(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}
	if format.Valid("landline") {
		t.Error("expected unknown name to be invalid")
	}
}

func TestParseRoundTripsVocabulary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(format.All()).Draw(t, "name")
		mangled := strings.ToUpper(strings.ReplaceAll(name.String(), "_", " "))
		parsed, err := format.Parse(mangled)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", mangled, err)
		}
		if parsed != name {
			t.Errorf("Parse(%q) = %q, want %q", mangled, parsed, name)
		}
	})
}
