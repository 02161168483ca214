// Package lexis provides an embedded full-text search library for statute
// articles, with a memoizing TTL cache in front of the index.
//
// # Quick Start
//
//	ctx := context.Background()
//	lib, _ := lexis.New()
//	defer lib.Close()
//
//	lib.IndexArticles(ctx, []lexical.Document{
//	    {ID: "1", Content: "O réu foi condenado à pena de reclusão"},
//	    {ID: "2", Content: "A pena de multa foi aplicada ao réu reincidente"},
//	})
//
//	results, _ := lib.Search(ctx, "pena réu", 10)
//	for _, r := range results {
//	    fmt.Println(r.Document.ID, r.Relevance, r.Matches)
//	}
//
// # Analysis
//
// Text is lowercased, stripped of diacritics, split on every non-word
// character, and filtered of short tokens and Portuguese stop words. The
// same analyzer is used for documents and queries, so "Réu", "reu" and
// "RÉU" are the same term. See package lexical/analysis.
//
// # Ranking
//
// Each distinct query term found in a document adds 1 plus a frequency
// bonus of min(occurrences/5, 2). Ties keep insertion order.
//
// # Caching
//
// Search results are memoized per (limit, analyzed query) in a bounded
// cache.Cache with creation-order eviction and lazy expiry. Indexing,
// deleting or clearing invalidates the cache. Use WithoutCache to disable
// it or WithCacheOptions to tune it.
//
// # Persistence
//
// Snapshot writes the indexed documents in a compact, optionally
// compressed format; Restore rebuilds the postings from it:
//
//	f, _ := os.Create("statutes.lxsn")
//	lib.Snapshot(ctx, f, snapshot.WithCompression(snapshot.CompressionZSTD))
//
// # Configuration
//
// Every constructor takes functional options. A YAML file can be loaded
// with LoadConfig and applied with WithConfig.
package lexis
