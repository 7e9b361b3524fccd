package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/verbum-domini-api/internal/ingest"
	"github.com/verbum-domini-api/internal/reconcile"
	"github.com/verbum-domini-api/pkg/schema/config"
)

var (
	ingestSource string
	ingestURL    string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load an external translation into the canon",
	Long: `Fetches an external translation, reconciles its book names against the
canon and bulk-loads its verses. Existing verses are never overwritten, so a
run can be repeated safely.

The source URL is taken from --url, then DR_SOURCE_URL (douay-rheims only),
then the source definition file.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSource, "source", "douay-rheims", "Reconciliation source definition")
	ingestCmd.Flags().StringVar(&ingestURL, "url", "", "Override the source URL")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.GetConfig()

	src, nameMap, err := reconcile.Load(ingestSource)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, reconcile.Sources())
	}

	url := ingestURL
	if url == "" && src.Name == "douay-rheims" {
		url = cfg.SourceURL
	}
	if url == "" {
		url = src.URL
	}
	if url == "" {
		return errors.New("no source URL configured")
	}

	conn, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	retry := ingest.Retry{Attempts: cfg.RetryAttempts, BaseDelay: cfg.RetryBaseDelay}
	source := ingest.NewHTTPSource(url, &http.Client{Timeout: cfg.HTTPClientTimeout}, retry, logger)

	runner, err := ingest.NewRunner(store, source, ingest.Config{
		Translation: src.Translation,
		Map:         nameMap,
		Retry:       retry,
		LockTTL:     cfg.LockTTL,
	}, logger)
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx)
	if report != nil {
		printReport(cmd.OutOrStdout(), report)
	}
	return err
}

func printReport(w io.Writer, report *ingest.Report) {
	fmt.Fprintf(w, "Run %s (%s): %d books, %d chapters, %s verses inserted in %s\n",
		report.RunID, report.Translation, report.Books, report.Chapters,
		humanize.Comma(int64(report.VersesInserted)), report.Duration.Round(time.Millisecond))
	for _, s := range report.Skipped {
		if s.Canonical != "" && s.Canonical != s.External {
			fmt.Fprintf(w, "  skipped %s (as %s): %v\n", s.External, s.Canonical, s.Err)
			continue
		}
		fmt.Fprintf(w, "  skipped %s: %v\n", s.External, s.Err)
	}
}
