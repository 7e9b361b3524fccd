package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/export"
	"github.com/verbum-domini-api/internal/repository/postgres"
	"github.com/verbum-domini-api/internal/repository/vertex"
	"github.com/verbum-domini-api/pkg/schema/db"
)

var (
	exportTranslation string
	exportOutput      string

	indexTranslation string
	indexOutput      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored translation as JSONL, one book per line",
	Long: `Writes every book of a translation in the source feed's JSON shape, one
book object per line:

  {"Genesis":{"1":{"1":"In the beginning..."}}}

Use --output - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportIndexCmd = &cobra.Command{
	Use:   "export-index",
	Short: "Export verse embeddings for a Vertex AI Vector Search index",
	Long: `Writes stored verse embeddings as a Vertex AI Vector Search JSONL import
file. Each datapoint carries a "translation" restrict.

After running:
  1. Upload the file to Cloud Storage:
     gsutil cp embeddings.jsonl gs://YOUR_BUCKET/embeddings/
  2. Create or update the index from that directory.

Requires PostgreSQL with embeddings populated by "verbum embed".`,
	Args: cobra.NoArgs,
	RunE: runExportIndex,
}

func init() {
	exportCmd.Flags().StringVar(&exportTranslation, "translation", "DR", "Translation abbreviation")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output JSONL file path (- for stdout)")
	_ = exportCmd.MarkFlagRequired("output")

	exportIndexCmd.Flags().StringVar(&indexTranslation, "translation", "", "Translation abbreviation (default all)")
	exportIndexCmd.Flags().StringVarP(&indexOutput, "output", "o", "embeddings.jsonl", "Output JSONL file path (- for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return withOutput(cmd, exportOutput, func(w io.Writer) error {
		summary, err := export.WriteTranslation(ctx, w, store, exportTranslation)
		if err != nil {
			return err
		}
		logger.Info("Export complete",
			zap.String("translation", exportTranslation),
			zap.Int("books", summary.Books),
			zap.Int("chapters", summary.Chapters),
			zap.Int("verses", summary.Verses),
			zap.String("output", exportOutput))
		return nil
	})
}

func runExportIndex(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if conn.DriverName() != db.DriverPostgres {
		return fmt.Errorf("export-index requires PostgreSQL, got %s", conn.DriverName())
	}
	repo := postgres.NewVectorSearchRepository(conn)

	return withOutput(cmd, indexOutput, func(w io.Writer) error {
		buf := bufio.NewWriter(w)
		dp := vertex.NewDatapointWriter(buf)
		if err := repo.EachEmbedding(ctx, indexTranslation, dp.Write); err != nil {
			return err
		}
		if err := buf.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
		logger.Info("Index export complete", zap.Int("datapoints", dp.Count()), zap.String("output", indexOutput))
		return nil
	})
}

// withOutput runs fn against the named file, or the command's stdout for "-"
func withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
