package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/hupe1980/lexis"
	"github.com/hupe1980/lexis/internal/mmap"
	"github.com/hupe1980/lexis/lexical"
	"github.com/hupe1980/lexis/snapshot"
)

// loadCorpus fills lib from path, which holds either a snapshot or a JSON
// array of documents. The file is mapped rather than read; decoding copies
// everything it keeps, so the mapping is released before returning.
func loadCorpus(ctx context.Context, lib *lexis.Library, path string) (report lexical.IndexReport, err error) {
	err = mmap.View(path, mmap.Sequential, func(data []byte) error {
		if snapshot.IsSnapshot(data) {
			report, err = lib.Restore(ctx, bytes.NewReader(data))
			return err
		}

		var docs []lexical.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return fmt.Errorf("decode corpus %s: %w", path, err)
		}

		report, err = lib.IndexArticles(ctx, docs)
		return err
	})
	if err != nil {
		return lexical.IndexReport{}, fmt.Errorf("load corpus: %w", err)
	}
	return report, nil
}
