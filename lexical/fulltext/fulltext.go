package fulltext

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lexis/lexical"
	"github.com/hupe1980/lexis/lexical/analysis"
	"github.com/hupe1980/lexis/lexical/highlight"
)

// DefaultLimit is the result count used when Search is called with a
// non-positive limit.
const DefaultLimit = 20

const (
	presenceScore     = 1.0
	frequencyDivisor  = 5.0
	maxFrequencyBonus = 2.0
)

type posting struct {
	docs      *roaring.Bitmap
	positions map[uint32][]int
}

type storedDoc struct {
	doc lexical.Document
	// terms lists the distinct tokens of doc, so its postings can be
	// removed without scanning the whole vocabulary.
	terms []string
}

// Index is an in-memory inverted index.
type Index struct {
	mu       sync.RWMutex
	analyzer *analysis.Analyzer
	logger   *slog.Logger

	inverted map[string]*posting
	ords     map[string]uint32
	docs     map[uint32]*storedDoc
	live     *roaring.Bitmap
	nextOrd  uint32
}

// Ensure Index implements lexical.Index
var _ lexical.Index = (*Index)(nil)

// New creates an empty Index.
func New(optFns ...Option) *Index {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	if o.analyzer == nil {
		o.analyzer = analysis.New()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Index{
		analyzer: o.analyzer,
		logger:   o.logger,
		inverted: make(map[string]*posting),
		ords:     make(map[string]uint32),
		docs:     make(map[uint32]*storedDoc),
		live:     roaring.New(),
	}
}

// Analyzer returns the analyzer shared by indexing and querying.
func (idx *Index) Analyzer() *analysis.Analyzer {
	return idx.analyzer
}

// IndexArticles tokenizes and indexes docs. Documents without an ID are
// skipped and counted. Indexing an ID that is already present replaces the
// previous document and its postings, so repeated calls with the same
// corpus are idempotent.
func (idx *Index) IndexArticles(docs []lexical.Document) lexical.IndexReport {
	var report lexical.IndexReport

	tokens := make([][]string, len(docs))
	for i, d := range docs {
		tokens[i] = idx.analyzer.Tokenize(d.Content)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	for i, d := range docs {
		if err := d.Validate(); err != nil {
			report.Skipped++
			idx.logger.Debug("skipping document", "position", i, "error", err)
			continue
		}

		ord, exists := idx.ords[d.ID]
		if exists {
			idx.removePostingsLocked(ord)
			report.Replaced++
		} else {
			ord = idx.nextOrd
			idx.nextOrd++
			idx.ords[d.ID] = ord
			idx.live.Add(ord)
		}

		idx.docs[ord] = &storedDoc{
			doc:   d,
			terms: idx.addPostingsLocked(ord, tokens[i]),
		}
		report.Indexed++
	}

	if report.Skipped > 0 {
		idx.logger.Warn("documents skipped during indexing", "skipped", report.Skipped, "indexed", report.Indexed)
	}

	return report
}

// addPostingsLocked records every token position of ord and returns the
// distinct tokens in first-occurrence order.
func (idx *Index) addPostingsLocked(ord uint32, tokens []string) []string {
	var terms []string

	for pos, tok := range tokens {
		p, ok := idx.inverted[tok]
		if !ok {
			p = &posting{
				docs:      roaring.New(),
				positions: make(map[uint32][]int),
			}
			idx.inverted[tok] = p
		}

		if _, seen := p.positions[ord]; !seen {
			p.docs.Add(ord)
			terms = append(terms, tok)
		}
		p.positions[ord] = append(p.positions[ord], pos)
	}

	return terms
}

func (idx *Index) removePostingsLocked(ord uint32) {
	sd, ok := idx.docs[ord]
	if !ok {
		return
	}

	for _, tok := range sd.terms {
		p, ok := idx.inverted[tok]
		if !ok {
			continue
		}
		p.docs.Remove(ord)
		delete(p.positions, ord)
		if p.docs.IsEmpty() {
			delete(idx.inverted, tok)
		}
	}
}

type hit struct {
	ord     uint32
	score   float64
	matches []string
}

// Search tokenizes query with the index analyzer and returns at most limit
// results ordered by descending relevance, ties broken by insertion order.
// A non-positive limit means DefaultLimit. An empty query or index yields
// no results.
func (idx *Index) Search(query string, limit int) []lexical.Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	tokens := uniqueTokens(idx.analyzer.Tokenize(query))
	if len(tokens) == 0 {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	hits := make(map[uint32]*hit)
	for _, tok := range tokens {
		p, ok := idx.inverted[tok]
		if !ok {
			continue
		}

		it := p.docs.Iterator()
		for it.HasNext() {
			ord := it.Next()

			h, ok := hits[ord]
			if !ok {
				h = &hit{ord: ord}
				hits[ord] = h
			}

			tf := float64(len(p.positions[ord]))
			h.score += presenceScore + min(tf/frequencyDivisor, maxFrequencyBonus)
			h.matches = append(h.matches, tok)
		}
	}

	if len(hits) == 0 {
		return nil
	}

	ranked := make([]*hit, 0, len(hits))
	for _, h := range hits {
		ranked = append(ranked, h)
	}
	slices.SortFunc(ranked, func(a, b *hit) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.ord, b.ord)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]lexical.Result, len(ranked))
	for i, h := range ranked {
		results[i] = lexical.Result{
			Document:  idx.docs[h.ord].doc,
			Relevance: h.score,
			Matches:   h.matches,
		}
	}

	return results
}

// Highlight splits text around whole-token occurrences of matches.
func (idx *Index) Highlight(text string, matches []string) []highlight.Span {
	return highlight.Split(text, matches)
}

// Delete removes the document with the given ID and its postings.
func (idx *Index) Delete(id string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	ord, ok := idx.ords[id]
	if !ok {
		return false
	}

	idx.removePostingsLocked(ord)
	delete(idx.docs, ord)
	delete(idx.ords, id)
	idx.live.Remove(ord)

	return true
}

// Clear removes all documents and postings.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.inverted = make(map[string]*posting)
	idx.ords = make(map[string]uint32)
	idx.docs = make(map[uint32]*storedDoc)
	idx.live.Clear()
	idx.nextOrd = 0
}

// Statistics returns the number of stored documents and distinct tokens.
func (idx *Index) Statistics() lexical.Statistics {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return lexical.Statistics{
		TotalArticles: len(idx.docs),
		TotalTerms:    len(idx.inverted),
	}
}

// Documents returns the stored documents in insertion order.
func (idx *Index) Documents() []lexical.Document {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]lexical.Document, 0, len(idx.docs))
	it := idx.live.Iterator()
	for it.HasNext() {
		out = append(out, idx.docs[it.Next()].doc)
	}
	return out
}

// Postings returns, for token, the positions at which it occurs in each
// document, keyed by document ID. The token is used as-is, not analyzed.
func (idx *Index) Postings(token string) map[string][]int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, ok := idx.inverted[token]
	if !ok {
		return nil
	}

	out := make(map[string][]int, len(p.positions))
	it := p.docs.Iterator()
	for it.HasNext() {
		ord := it.Next()
		out[idx.docs[ord].doc.ID] = slices.Clone(p.positions[ord])
	}
	return out
}

func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
