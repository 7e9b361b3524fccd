package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/verbum-domini-api/internal/repository/postgres"
	"github.com/verbum-domini-api/internal/services"
	"github.com/verbum-domini-api/pkg/schema/config"
	"github.com/verbum-domini-api/pkg/schema/db"
	pkgservices "github.com/verbum-domini-api/pkg/schema/services"
)

var (
	embedTranslation string
	embedBatchSize   int
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed verses that have no embedding yet",
	Long: `Embeds every verse of a translation lacking an embedding, in batches,
with the backend named by EMBEDDING_PROVIDER, and stores the vectors with
pgvector. Interrupted runs resume where they stopped. Requires PostgreSQL.`,
	Args: cobra.NoArgs,
	RunE: runEmbed,
}

func init() {
	embedCmd.Flags().StringVar(&embedTranslation, "translation", "DR", "Translation abbreviation")
	embedCmd.Flags().IntVar(&embedBatchSize, "batch", services.DefaultEmbedBatchSize, "Verses per embedding request")
}

func runEmbed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.GetConfig()

	conn, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateVectorSchema(ctx, conn, cfg.EmbeddingDimensions); err != nil {
		return err
	}

	embeddings, err := pkgservices.NewEmbeddingsService(ctx, cfg)
	if err != nil {
		return err
	}
	defer embeddings.Close()

	svc := services.NewEmbedService(store, postgres.NewVectorSearchRepository(conn), embeddings, logger)
	n, err := svc.EmbedTranslation(ctx, embedTranslation, embedBatchSize)
	fmt.Fprintf(cmd.OutOrStdout(), "Embedded %s verses of %s\n", humanize.Comma(int64(n)), embedTranslation)
	return err
}
