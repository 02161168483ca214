package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var corpus string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print document and term counts of a corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := a.newLibrary(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer lib.Close()

			report, err := loadCorpus(cmd.Context(), lib, corpus)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				TotalArticles int `json:"total_articles"`
				TotalTerms    int `json:"total_terms"`
				Skipped       int `json:"skipped"`
			}{
				TotalArticles: lib.Statistics().TotalArticles,
				TotalTerms:    lib.Statistics().TotalTerms,
				Skipped:       report.Skipped,
			})
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", "corpus file (JSON array or snapshot)")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}
