package analysis

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTokenLength is the shortest token, in runes, that is kept.
const DefaultMinTokenLength = 3

// Analyzer tokenizes text for indexing and querying.
// It is immutable after construction and safe for concurrent use.
type Analyzer struct {
	stopWords map[string]struct{}
	minLength int
}

type options struct {
	stopWords []string
	extra     []string
	minLength int
}

// Option configures an Analyzer.
type Option func(*options)

// WithStopWords replaces the default stop-word list.
func WithStopWords(words ...string) Option {
	return func(o *options) {
		o.stopWords = words
	}
}

// WithExtraStopWords adds words to the stop-word list.
func WithExtraStopWords(words ...string) Option {
	return func(o *options) {
		o.extra = append(o.extra, words...)
	}
}

// WithMinTokenLength sets the minimum token length in runes.
// Values < 1 are ignored.
func WithMinTokenLength(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.minLength = n
		}
	}
}

// New creates an Analyzer. Stop words are folded, so accented and
// unaccented spellings are equivalent.
func New(optFns ...Option) *Analyzer {
	o := options{
		stopWords: PortugueseStopWords,
		minLength: DefaultMinTokenLength,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	a := &Analyzer{
		stopWords: make(map[string]struct{}, len(o.stopWords)+len(o.extra)),
		minLength: o.minLength,
	}

	f := NewFolder()
	for _, list := range [][]string{o.stopWords, o.extra} {
		for _, w := range list {
			if w = strings.TrimSpace(f.Fold(w)); w != "" {
				a.stopWords[w] = struct{}{}
			}
		}
	}

	return a
}

// Tokenize returns the surviving tokens of text in occurrence order.
// The index of a token in the returned slice is its position.
func (a *Analyzer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !IsWordRune(r)
	})

	tokens := fields[:0]
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) < a.minLength {
			continue
		}
		if a.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// IsStopWord reports whether the folded token is a stop word.
func (a *Analyzer) IsStopWord(token string) bool {
	_, ok := a.stopWords[token]
	return ok
}
