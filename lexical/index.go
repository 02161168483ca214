package lexical

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrMissingID is returned by Document.Validate when the identifier is empty.
var ErrMissingID = errors.New("document id is required")

var documentValidate = validator.New()

// Document is a text-bearing record supplied by the caller, typically one
// statute article.
type Document struct {
	ID      string `json:"id" yaml:"id" validate:"required"`
	Content string `json:"content" yaml:"content"`
}

// Validate checks the document at the indexing boundary.
func (d Document) Validate() error {
	if err := documentValidate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "ID" {
					return ErrMissingID
				}
			}
		}
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}

// Result is one ranked search hit.
type Result struct {
	Document Document `json:"document"`
	// Relevance is the sum over matched tokens of 1 plus a term-frequency
	// bonus of min(occurrences/5, 2).
	Relevance float64 `json:"relevance"`
	// Matches holds the distinct matched query tokens in query order.
	Matches []string `json:"matches"`
}

// Statistics describes the size of an index.
type Statistics struct {
	TotalArticles int `json:"total_articles"`
	TotalTerms    int `json:"total_terms"`
}

// IndexReport summarizes one IndexArticles call.
type IndexReport struct {
	Indexed  int // documents stored, including replacements
	Replaced int // documents whose ID was already indexed
	Skipped  int // documents rejected by Validate
}

// Index is the interface for a lexical search index.
type Index interface {
	// IndexArticles adds documents to the index. Documents whose ID is
	// already indexed replace the previous version.
	IndexArticles(docs []Document) IndexReport
	// Search returns at most limit results ordered by descending relevance.
	Search(query string, limit int) []Result
	// Delete removes a document and reports whether it was indexed.
	Delete(id string) bool
	// Clear removes every document and posting.
	Clear()
	// Statistics returns document and term counts.
	Statistics() Statistics
	// Documents returns the indexed documents in insertion order.
	Documents() []Document
}
