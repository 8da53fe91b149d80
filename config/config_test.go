package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatak/charstat/alphabet"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	de, err := cfg.Find("german")
	require.NoError(t, err)
	assert.True(t, de.Plot)
	assert.Equal(t, []string{"", "n", "un", "gun", "a", "d", "z", "c"}, de.Histories)

	a, err := de.AlphabetOf()
	require.NoError(t, err)
	assert.Equal(t, alphabet.German.String(), a.String())

	en, err := cfg.Find("EN")
	require.NoError(t, err)
	assert.Equal(t, "English", en.Name)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "charstat.yaml", `
max_len: 3
top_k: 5
languages:
  - name: Toy
    corpus: ~/toy.txt
    alphabet: abc
    histories: ["", "a"]
`)

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxLen)
	assert.Equal(t, 5, cfg.TopK)
	require.Len(t, cfg.Languages, 1)

	toy := cfg.Languages[0]
	assert.Equal(t, []string{"", "a"}, toy.Histories)
	a, err := toy.AlphabetOf()
	require.NoError(t, err)
	assert.Equal(t, "abc", a.String())
}

func TestLoadOverride(t *testing.T) {
	v := NewViper()
	v.Set("top_k", 3)
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, DefaultMaxLen, cfg.MaxLen)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"max_len", "max_len: 0\n"},
		{"top_k", "top_k: -1\n"},
		{"duplicate alphabet", "languages:\n  - name: X\n    alphabet: abca\n"},
		{"unknown tag", "languages:\n  - name: French\n    tag: fr\n"},
		{"bad tag", "languages:\n  - name: Bad\n    tag: \"!!\"\n"},
		{"duplicate name", "languages:\n  - name: X\n    tag: en\n  - name: x\n    tag: de\n"},
	}

	for _, tt := range tests {
		path := writeConfig(t, "bad.yaml", tt.content)
		_, err := Load(NewViper(), path)
		var cfgErr *alphabet.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr, tt.name)
	}

	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindUnknown(t *testing.T) {
	_, err := Default().Find("klingon")
	var cfgErr *alphabet.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
