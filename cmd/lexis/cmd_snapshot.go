package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/lexis/codec"
	"github.com/hupe1980/lexis/internal/fs"
	"github.com/hupe1980/lexis/snapshot"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var (
		corpus      string
		out         string
		compression string
		codecName   string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Convert a corpus into a compressed snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := snapshot.ParseCompression(compression)
			if err != nil {
				return err
			}
			cd, ok := codec.ByName(codecName)
			if !ok {
				return fmt.Errorf("%w: %q", snapshot.ErrUnknownCodec, codecName)
			}

			lib, err := a.newLibrary(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer lib.Close()

			ctx := cmd.Context()
			report, err := loadCorpus(ctx, lib, corpus)
			if err != nil {
				return err
			}

			err = fs.WriteAtomic(fs.Default, out, 0o644, func(w io.Writer) error {
				return lib.Snapshot(ctx, w, snapshot.WithCompression(c), snapshot.WithCodec(cd))
			})
			if err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d documents to %s (%s)\n", report.Indexed, out, c)
			return err
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", "corpus file (JSON array or snapshot)")
	cmd.Flags().StringVar(&out, "out", "", "snapshot file to write")
	cmd.Flags().StringVar(&compression, "compression", snapshot.CompressionZSTD.String(), "body compression (none, lz4, zstd)")
	cmd.Flags().StringVar(&codecName, "codec", codec.Default.Name(), "body codec ("+strings.Join(codec.Names(), ", ")+")")
	_ = cmd.MarkFlagRequired("corpus")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
