package analysis

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder lowercases text and strips diacritics.
// A Folder is not safe for concurrent use; use Fold for one-off calls.
type Folder struct {
	t transform.Transformer
}

// NewFolder creates a Folder.
func NewFolder() *Folder {
	return &Folder{
		t: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))),
	}
}

// Fold returns s lowercased with combining marks removed, so "Réu" and
// "REU" both fold to "reu". Folding is rune-local: folding a string equals
// concatenating the folded runes.
func (f *Folder) Fold(s string) string {
	s = strings.ToLower(s)
	if isASCII(s) {
		return s
	}

	out, _, err := transform.String(f.t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldRune folds a single rune.
func (f *Folder) FoldRune(r rune) string {
	if r < utf8.RuneSelf {
		return string(unicode.ToLower(r))
	}
	return f.Fold(string(r))
}

var folderPool = sync.Pool{
	New: func() any { return NewFolder() },
}

// Fold folds s using a pooled Folder. It is safe for concurrent use.
func Fold(s string) string {
	f := folderPool.Get().(*Folder)
	defer folderPool.Put(f)
	return f.Fold(s)
}

// IsWordRune reports whether r belongs to a word: a letter, a decimal digit
// or an underscore. The ordinal indicators º and ª are treated as
// punctuation so "5º" and "5" tokenize alike.
func IsWordRune(r rune) bool {
	if r == '_' {
		return true
	}
	if r == 'º' || r == 'ª' {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
