// Package testutil provides testing utilities for lexis.
//
// This package is intended for use in tests and benchmarks only.
// It provides a manually advanced clock for TTL tests and a seeded
// generator for synthetic statute corpora.
//
// # Manual Clock
//
//	clock := testutil.NewManualClock(time.Unix(0, 0))
//	c := cache.New[string](cache.WithClock(clock.Now))
//	clock.Advance(time.Minute)
//
// # Synthetic Corpus
//
//	gen := testutil.NewGenerator(seed)
//	docs := gen.Corpus(1000, 40) // 1000 articles of 40 words
package testutil
