package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/logging"
	"github.com/verbum-domini-api/internal/repository/sqlstore"
	"github.com/verbum-domini-api/pkg/schema/config"
	"github.com/verbum-domini-api/pkg/schema/db"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "verbum",
	Short: "Verbum Domini data tooling",
	Long: `verbum seeds the canon, ingests external translations and maintains
the derived data (exports, embeddings) behind the Verbum Domini API.

Storage is selected with DATABASE_DRIVER (postgres or sqlite) and DATABASE_URL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if present
		_ = godotenv.Load()

		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportIndexCmd)
	rootCmd.AddCommand(embedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the configured database and ensures the schema exists.
// The caller closes the returned handle.
func openStore(ctx context.Context) (*sqlx.DB, *sqlstore.Store, error) {
	conn, err := db.Open(ctx, config.GetConfig())
	if err != nil {
		return nil, nil, err
	}
	if err := db.CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, sqlstore.New(conn), nil
}
