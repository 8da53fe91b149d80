package alphabet

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestPredefined(t *testing.T) {
	if English.Len() != 26 {
		t.Errorf("English.Len() = %d, want 26", English.Len())
	}
	if German.Len() != 30 {
		t.Errorf("German.Len() = %d, want 30", German.Len())
	}
	if English.Contains('ä') {
		t.Errorf("English should not contain 'ä'")
	}
	if !German.Contains('ß') {
		t.Errorf("German should contain 'ß'")
	}
	if got := German.Index('ä'); got != 26 {
		t.Errorf("German.Index('ä') = %d, want 26", got)
	}
	if got := English.Index('1'); got != -1 {
		t.Errorf("English.Index('1') = %d, want -1", got)
	}
}

func TestNew(t *testing.T) {
	a, err := New("bca")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.String() != "bca" {
		t.Errorf("String() = %q, want %q", a.String(), "bca")
	}

	runes := a.Runes()
	runes[0] = 'z'
	if a.String() != "bca" {
		t.Errorf("Runes() must return a copy")
	}

	tests := []string{"", "abca"}
	for _, chars := range tests {
		_, err := New(chars)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("New(%q) error = %v, want *ConfigurationError", chars, err)
		}
	}
}

func TestForLanguage(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want string
		ok   bool
	}{
		{language.English, English.String(), true},
		{language.MustParse("en-GB"), English.String(), true},
		{language.German, German.String(), true},
		{language.MustParse("de-AT"), German.String(), true},
		{language.French, "", false},
	}
	for _, tt := range tests {
		a, ok := ForLanguage(tt.tag)
		if ok != tt.ok || a.String() != tt.want {
			t.Errorf("ForLanguage(%v) = %q, %v; want %q, %v", tt.tag, a.String(), ok, tt.want, tt.ok)
		}
	}
}
