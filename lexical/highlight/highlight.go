// Package highlight splits text into highlighted and plain spans around
// matched search terms.
//
// Matching is whole-token and insensitive to case and accents: the term
// "reu" highlights "Réu" but not "reuniões". Terms are matched literally;
// characters such as "(" or "." carry no pattern meaning. Concatenating
// the Text of all returned spans always reproduces the input.
package highlight

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hupe1980/lexis/lexical/analysis"
)

// Span is a contiguous piece of the original text.
type Span struct {
	Text      string `json:"text"`
	Highlight bool   `json:"highlight"`
}

// Split returns text as alternating spans, highlighting every whole-token
// occurrence of any of terms. With empty text or no usable terms it returns
// a single plain span holding text.
func Split(text string, terms []string) []Span {
	plain := []Span{{Text: text}}
	if text == "" || len(terms) == 0 {
		return plain
	}

	folder := analysis.NewFolder()

	terms = normalizeTerms(folder, terms)
	if len(terms) == 0 {
		return plain
	}

	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	// Longest alternatives first, so at a given position the leftmost-first
	// regexp semantics prefer "penal" over "pena".
	re := regexp.MustCompile(strings.Join(quoted, "|"))

	folded, offsets := foldWithOffsets(folder, text)

	var (
		spans []Span
		last  int // end of the previous span in text
		pos   int // search position in folded
	)

	for pos < len(folded) {
		loc := re.FindStringIndex(folded[pos:])
		if loc == nil {
			break
		}

		start := pos + loc[0]
		end, ok := wholeTokenAt(folded, start, terms)
		if !ok {
			_, size := utf8.DecodeRuneInString(folded[start:])
			pos = start + size
			continue
		}
		pos = end

		origStart, origEnd := offsets[start], offsets[end]
		if origStart < last || origEnd <= origStart {
			continue
		}

		if origStart > last {
			spans = append(spans, Span{Text: text[last:origStart]})
		}
		spans = append(spans, Span{Text: text[origStart:origEnd], Highlight: true})
		last = origEnd
	}

	if len(spans) == 0 {
		return plain
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}

	return spans
}

// normalizeTerms folds, trims and de-duplicates terms, ordered longest first.
func normalizeTerms(folder *analysis.Folder, terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))

	for _, term := range terms {
		term = strings.TrimSpace(folder.Fold(term))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	return out
}

// wholeTokenAt returns the end of the longest term that starts at start in
// folded and is delimited by non-word runes on both sides.
func wholeTokenAt(folded string, start int, terms []string) (int, bool) {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(folded[:start]); analysis.IsWordRune(r) {
			return 0, false
		}
	}

	rest := folded[start:]
	for _, term := range terms {
		if !strings.HasPrefix(rest, term) {
			continue
		}
		end := start + len(term)
		if end < len(folded) {
			if r, _ := utf8.DecodeRuneInString(folded[end:]); analysis.IsWordRune(r) {
				continue
			}
		}
		return end, true
	}

	return 0, false
}

// foldWithOffsets folds text rune by rune. offsets[i] is the byte offset in
// text of the rune that produced folded byte i; offsets[len(folded)] is
// len(text).
func foldWithOffsets(folder *analysis.Folder, text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)

	for i, r := range text {
		frag := folder.FoldRune(r)
		b.WriteString(frag)
		for range len(frag) {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(text))

	return b.String(), offsets
}
