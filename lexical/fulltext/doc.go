// Package fulltext provides an in-memory inverted index for statute
// articles.
//
// Every token maps to a posting: a roaring bitmap of the documents that
// contain it plus, per document, the ascending token positions where it
// occurs. Documents are addressed internally by a dense ordinal assigned
// on first insertion, which also fixes the tie-break order of results.
//
// # Scoring
//
// For each distinct query token found in a document, the document gains
// 1.0 for presence plus min(occurrences/5, 2.0) for frequency. Documents
// matching no query token are never returned.
//
// # Usage
//
//	idx := fulltext.New()
//	idx.IndexArticles(docs)
//	for _, r := range idx.Search("pena réu", 20) {
//	    spans := idx.Highlight(r.Document.Content, r.Matches)
//	    ...
//	}
//
// # Thread Safety
//
// The index is safe for concurrent reads and writes.
package fulltext
