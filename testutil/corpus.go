package testutil

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hupe1980/lexis/lexical"
)

// Vocabulary is the word pool for synthetic articles, most frequent first.
// It includes stop words so generated text exercises their removal.
var Vocabulary = []string{
	"pena", "réu", "reclusão", "multa", "crime", "lei", "artigo", "juiz",
	"sentença", "recurso", "prazo", "processo", "tribunal", "ação", "código",
	"direito", "contrato", "parágrafo", "inciso", "detenção", "culpa", "dolo",
	"prescrição", "denúncia", "testemunha", "prova", "acusação", "defesa",
	"o", "a", "de", "da", "do", "em", "para", "com", "que", "por", "ao",
}

// wordSkew is the Zipf exponent used when drawing Vocabulary words.
const wordSkew = 1.1

// Generator produces reproducible statute corpora from a seed.
// It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	src   *rand.Rand
	words []float64 // cumulative Zipf weights over Vocabulary
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		src:   rand.New(rand.NewSource(seed)),
		words: zipfCDF(len(Vocabulary), wordSkew),
	}
}

// zipfCDF returns the cumulative weights of ranks 1..n with P(k) ∝ 1/k^s.
func zipfCDF(n int, s float64) []float64 {
	cdf := make([]float64, n)
	var sum float64
	for k := range cdf {
		sum += math.Pow(float64(k+1), -s)
		cdf[k] = sum
	}
	return cdf
}

// draw picks an index into cdf. Callers hold g.mu.
func (g *Generator) draw(cdf []float64) int {
	if len(cdf) <= 1 {
		return 0
	}
	u := g.src.Float64() * cdf[len(cdf)-1]
	return min(sort.SearchFloat64s(cdf, u), len(cdf)-1)
}

// Zipf draws a rank in [0, n) with exponent s.
func (g *Generator) Zipf(n int, s float64) int {
	cdf := zipfCDF(n, s)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.draw(cdf)
}

// Article returns words space-separated Vocabulary entries.
func (g *Generator) Article(words int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	for i := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Vocabulary[g.draw(g.words)])
	}
	return b.String()
}

// Corpus returns n articles of the given length with IDs "1" to "n".
func (g *Generator) Corpus(n, words int) []lexical.Document {
	docs := make([]lexical.Document, n)
	for i := range docs {
		docs[i] = lexical.Document{ID: strconv.Itoa(i + 1), Content: g.Article(words)}
	}
	return docs
}
