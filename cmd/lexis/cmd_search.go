package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/hupe1980/lexis"
	"github.com/hupe1980/lexis/lexical"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		corpus     string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Rank corpus articles against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.newLibrary(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer lib.Close()

			ctx := cmd.Context()
			if _, err := loadCorpus(ctx, lib, corpus); err != nil {
				return err
			}

			results, err := lib.Search(ctx, strings.Join(args, " "), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			return printResults(cmd.OutOrStdout(), lib, results)
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", "corpus file (JSON array or snapshot)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 uses the configured default)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func printResults(w io.Writer, lib *lexis.Library, results []lexical.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no matches")
		return err
	}
	for i, r := range results {
		_, err := fmt.Fprintf(w, "%d. %s (%.2f) %s\n", i+1, r.Document.ID, r.Relevance,
			markSpans(lib.Highlight(r.Document.Content, r.Matches)))
		if err != nil {
			return err
		}
	}
	return nil
}
