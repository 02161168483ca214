// Package lexical defines the types shared by lexical (keyword) search
// over statute articles.
//
// # Built-in Implementation
//
// The fulltext subpackage provides an in-memory inverted index:
//
//	import "github.com/hupe1980/lexis/lexical/fulltext"
//
//	idx := fulltext.New()
//	idx.IndexArticles([]lexical.Document{
//	    {ID: "art-121", Content: "Matar alguém: pena de reclusão, de seis a vinte anos."},
//	})
//	results := idx.Search("pena reclusão", 20)
//
// Tokenization lives in the analysis subpackage and match highlighting in
// the highlight subpackage.
//
// # Custom Implementations
//
// Implement the Index interface for a different ranking model:
//
//	type Index interface {
//	    IndexArticles(docs []Document) IndexReport
//	    Search(query string, limit int) []Result
//	    Delete(id string) bool
//	    Clear()
//	    Statistics() Statistics
//	    Documents() []Document
//	}
package lexical
