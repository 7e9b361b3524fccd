package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verbum-domini-api/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the canon, translations and sample verses",
	Long: `Upserts the 73-book canon, the built-in translations and a handful of
sample verses. Safe to repeat; sample verse text is overwritten.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	summary, err := seed.Run(ctx, store, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d translations, %d books, %d sample verses\n",
		summary.Translations, summary.Books, summary.Verses)
	return nil
}
