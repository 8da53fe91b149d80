package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/teatak/charstat/alphabet"
	"github.com/teatak/charstat/util"
	"golang.org/x/text/language"
)

const (
	DefaultMaxLen = 4
	DefaultTopK   = 15
)

// Language describes one corpus and the histories analysed for it.
type Language struct {
	Name string `mapstructure:"name"`
	// Tag is a BCP 47 tag; it selects the predefined alphabet when Alphabet is empty.
	Tag      string `mapstructure:"tag"`
	Corpus   string `mapstructure:"corpus"`
	Alphabet string `mapstructure:"alphabet"`
	// Charset widens the characters kept by the tokenizer beyond the alphabet.
	Charset   string   `mapstructure:"charset"`
	Histories []string `mapstructure:"histories"`
	Plot      bool     `mapstructure:"plot"`
}

// Config holds the settings shared by every pipeline stage.
type Config struct {
	MaxLen    int        `mapstructure:"max_len"`
	TopK      int        `mapstructure:"top_k"`
	Languages []Language `mapstructure:"languages"`
}

// Default returns the configuration of the reference run: English and German,
// n-grams up to 4, top 15.
func Default() Config {
	return Config{
		MaxLen: DefaultMaxLen,
		TopK:   DefaultTopK,
		Languages: []Language{
			{
				Name:      "English",
				Tag:       "en",
				Corpus:    "corpora/corpus.en",
				Histories: []string{"", "n", "un", "gun"},
			},
			{
				Name:      "German",
				Tag:       "de",
				Corpus:    "corpora/corpus.de",
				Histories: []string{"", "n", "un", "gun", "a", "d", "z", "c"},
				Plot:      true,
			},
		},
	}
}

// NewViper returns a viper instance preloaded with the defaults.
func NewViper() *viper.Viper {
	def := Default()
	langs := make([]map[string]interface{}, len(def.Languages))
	for i, l := range def.Languages {
		langs[i] = map[string]interface{}{
			"name":      l.Name,
			"tag":       l.Tag,
			"corpus":    l.Corpus,
			"alphabet":  l.Alphabet,
			"charset":   l.Charset,
			"histories": l.Histories,
			"plot":      l.Plot,
		}
	}

	v := viper.New()
	v.SetDefault("max_len", def.MaxLen)
	v.SetDefault("top_k", def.TopK)
	v.SetDefault("languages", langs)
	v.SetEnvPrefix("charstat")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and returns the
// validated configuration. An empty path uses only what v already holds.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		expanded, err := util.ExpandPath(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "expand config path")
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings and every language's alphabet.
func (c Config) Validate() error {
	if c.MaxLen < 1 {
		return &alphabet.ConfigurationError{Field: "max_len", Reason: fmt.Sprintf("must be at least 1, got %d", c.MaxLen)}
	}
	if c.TopK < 0 {
		return &alphabet.ConfigurationError{Field: "top_k", Reason: fmt.Sprintf("must not be negative, got %d", c.TopK)}
	}
	if len(c.Languages) == 0 {
		return &alphabet.ConfigurationError{Field: "languages", Reason: "no language configured"}
	}
	seen := make(map[string]bool)
	for _, l := range c.Languages {
		key := strings.ToLower(l.Name)
		if l.Name == "" || seen[key] {
			return &alphabet.ConfigurationError{Field: "languages", Reason: fmt.Sprintf("missing or duplicate name %q", l.Name)}
		}
		seen[key] = true
		if _, err := l.AlphabetOf(); err != nil {
			return err
		}
	}
	return nil
}

// AlphabetOf returns the explicit alphabet, or the predefined one for Tag.
func (l Language) AlphabetOf() (alphabet.Alphabet, error) {
	if l.Alphabet != "" {
		a, err := alphabet.New(l.Alphabet)
		if err != nil {
			return alphabet.Alphabet{}, errors.Wrapf(err, "language %s", l.Name)
		}
		return a, nil
	}
	tag, err := language.Parse(l.Tag)
	if err != nil {
		return alphabet.Alphabet{}, &alphabet.ConfigurationError{
			Field:  "languages." + l.Name + ".tag",
			Reason: err.Error(),
		}
	}
	a, ok := alphabet.ForLanguage(tag)
	if !ok {
		return alphabet.Alphabet{}, &alphabet.ConfigurationError{
			Field:  "languages." + l.Name + ".alphabet",
			Reason: fmt.Sprintf("no predefined alphabet for %s", tag),
		}
	}
	return a, nil
}

// Find returns the language whose name or tag matches name, ignoring case.
func (c Config) Find(name string) (Language, error) {
	for _, l := range c.Languages {
		if strings.EqualFold(l.Name, name) || strings.EqualFold(l.Tag, name) {
			return l, nil
		}
	}
	return Language{}, &alphabet.ConfigurationError{Field: "language", Reason: fmt.Sprintf("unknown language %q", name)}
}
