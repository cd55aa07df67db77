package coach

import (
	"strings"
	"testing"

	"github.com/fitfocus/fitfocus/internal/model"
)

func TestInstructionCoversAllPersonaLanguagePairs(t *testing.T) {
	personas := []model.Persona{model.PersonaStrict, model.PersonaPoetic, model.PersonaGentle}
	langs := []model.Language{model.LanguageEN, model.LanguageCN}
	seen := make(map[string]bool)
	for _, p := range personas {
		for _, l := range langs {
			text := Instruction(p, l)
			if text == "" {
				t.Fatalf("empty instruction for %s/%s", p, l)
			}
			if seen[text] {
				t.Fatalf("duplicate instruction for %s/%s", p, l)
			}
			seen[text] = true
		}
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct instructions, got %d", len(seen))
	}
}

func TestInstructionUnknownPersonaFallsBackToPoetic(t *testing.T) {
	got := Instruction(model.Persona("mystic"), model.LanguageEN)
	if got != Instruction(model.PersonaPoetic, model.LanguageEN) {
		t.Fatal("unknown persona should fall back to poetic")
	}
}

func TestInstructionUnknownLanguageFallsBackToEnglish(t *testing.T) {
	got := Instruction(model.PersonaStrict, model.Language("fr"))
	if got != Instruction(model.PersonaStrict, model.LanguageEN) {
		t.Fatal("unknown language should fall back to english")
	}
}

func TestStripMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"**bold** and _italic_", "bold and italic"},
		{"# Heading\n> quote", "Heading\nquote"},
		{"`code` and ~strike~", "code and strike"},
		{"  plain sentence  ", "plain sentence"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripMarkdown(tc.in); got != tc.want {
			t.Fatalf("StripMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFallbacksAreLocalized(t *testing.T) {
	if Fallback(model.LanguageEN) == Fallback(model.LanguageCN) {
		t.Fatal("daily fallbacks should differ by language")
	}
	if ChatFallback(model.LanguageEN) == ChatFallback(model.LanguageCN) {
		t.Fatal("chat fallbacks should differ by language")
	}
	if strings.Contains(Fallback(model.LanguageEN), "*") {
		t.Fatal("fallback should be plain prose")
	}
}
