package analysis

import (
	"log"

	"github.com/teatak/charstat/alphabet"
	"github.com/teatak/charstat/config"
	"github.com/teatak/charstat/corpus"
	"github.com/teatak/charstat/distribution"
	"github.com/teatak/charstat/frequency"
	"github.com/teatak/charstat/ngram"
	"github.com/teatak/charstat/tokenizer"
)

// Options are the settings every stage of the pipeline reads.
type Options struct {
	MaxLen   int
	TopK     int
	Alphabet alphabet.Alphabet
	// Charset is the tokenizer's permitted set; nil means the alphabet.
	Charset []rune
	// Logger receives progress lines; nil means log.Default().
	Logger *log.Logger
}

// HistoryResult is the estimate for one history.
type HistoryResult struct {
	History      string
	Distribution distribution.Distribution
	// Entropy is only meaningful when Distribution.Empty() is false.
	Entropy float64
}

// Report is everything derived from one corpus.
type Report struct {
	Language string
	Tokens   int
	Chars    int
	Table    *frequency.Table
	// Top[n-1] holds the most frequent n-grams of length n.
	Top       [][]frequency.Entry
	Histories []HistoryResult
}

// Analyze runs the pipeline over text: tokenize, generate n-grams, count,
// select top-k per length and estimate each history's distribution.
func Analyze(lang, text string, histories []string, opts Options) *Report {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Printf("[1/4] Tokenizing %s corpus (%d bytes)...", lang, len(text))
	charset := opts.Charset
	if charset == nil {
		charset = opts.Alphabet.Runes()
	}
	tokens := tokenizer.New(charset).Tokenize(text)
	r := &Report{Language: lang, Tokens: len(tokens), Chars: tokenizer.CharCount(tokens)}

	logger.Printf("[2/4] Generating n-grams (1 to %d) from %d tokens...", opts.MaxLen, r.Tokens)
	grams := ngram.MakeCorpus(tokens, opts.MaxLen)

	logger.Printf("[3/4] Counting %d n-grams...", len(grams))
	r.Table = frequency.Count(grams)
	if err := distribution.CheckCoverage(r.Table, opts.Alphabet); err != nil {
		logger.Printf("Warning: %s: %v", lang, err)
	}
	for n := 1; n <= opts.MaxLen; n++ {
		r.Top = append(r.Top, r.Table.TopKEntries(opts.TopK, n))
	}

	logger.Printf("[4/4] Estimating %d distributions over %d characters...", len(histories), opts.Alphabet.Len())
	for _, h := range histories {
		r.Histories = append(r.Histories, Estimate(r.Table, opts.Alphabet, h, logger))
	}
	return r
}

// Estimate computes the distribution and entropy for one history.
func Estimate(t *frequency.Table, a alphabet.Alphabet, history string, logger *log.Logger) HistoryResult {
	d := distribution.Estimate(t, a, history)
	res := HistoryResult{History: history, Distribution: d}
	if d.Empty() {
		if logger != nil {
			logger.Printf("Note: history %q has no observed continuation", history)
		}
		return res
	}
	distribution.Validate(d)
	res.Entropy = distribution.Entropy(d)
	return res
}

// Run loads the corpus of lang and analyses it with the shared settings in cfg.
func Run(cfg config.Config, lang config.Language, logger *log.Logger) (*Report, error) {
	a, err := lang.AlphabetOf()
	if err != nil {
		return nil, err
	}
	text, err := corpus.Load(lang.Corpus)
	if err != nil {
		return nil, err
	}
	opts := Options{MaxLen: cfg.MaxLen, TopK: cfg.TopK, Alphabet: a, Logger: logger}
	if lang.Charset != "" {
		opts.Charset = []rune(lang.Charset)
	}
	return Analyze(lang.Name, text, lang.Histories, opts), nil
}

// TopGrams returns the top n-grams of length n as plain strings.
func (r *Report) TopGrams(n int) []string {
	if n < 1 || n > len(r.Top) {
		return []string{}
	}
	grams := make([]string, len(r.Top[n-1]))
	for i, e := range r.Top[n-1] {
		grams[i] = e.Gram
	}
	return grams
}
