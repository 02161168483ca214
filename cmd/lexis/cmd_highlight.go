package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/lexis/lexical/highlight"
)

func newHighlightCmd(a *app) *cobra.Command {
	var terms []string

	cmd := &cobra.Command{
		Use:   "highlight TEXT...",
		Short: "Mark whole-token occurrences of terms in text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.newLibrary(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer lib.Close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), markSpans(lib.Highlight(strings.Join(args, " "), terms)))
			return err
		},
	}

	cmd.Flags().StringSliceVar(&terms, "terms", nil, "comma-separated terms to highlight")
	_ = cmd.MarkFlagRequired("terms")

	return cmd
}

// markSpans renders highlighted spans wrapped in brackets.
func markSpans(spans []highlight.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Highlight {
			sb.WriteByte('[')
			sb.WriteString(s.Text)
			sb.WriteByte(']')
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}
