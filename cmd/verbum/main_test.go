package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum-domini-api/internal/ingest"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "verbum-cli")
	if err != nil {
		panic(err)
	}
	os.Setenv("DATABASE_DRIVER", "sqlite")
	os.Setenv("DATABASE_URL", filepath.Join(dir, "verbum.db"))
	os.Setenv("INGEST_RETRY_BASE_DELAY", "1ms")

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

const douayFixture = `{
  "Genesis": {"1": {"1": "In the beginning God created heaven, and earth.", "2": "And the earth was void and empty."}},
  "Josue": {"1": {"1": "Now it came to pass after the death of Moses the servant of the Lord."}},
  "Prayer of Manasses": {"1": {"1": "O Lord Almighty, God of our fathers."}}
}`

func TestSeedIngestExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(douayFixture))
	}))
	defer srv.Close()

	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "73 books")

	out, err = execute(t, "ingest", "--source", "douay-rheims", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "2 books, 2 chapters, 3 verses inserted")
	assert.Contains(t, out, "skipped Prayer of Manasses")

	out, err = execute(t, "ingest", "--source", "douay-rheims", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "0 verses inserted")

	path := filepath.Join(t.TempDir(), "dr.jsonl")
	_, err = execute(t, "export", "--translation", "DR", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Joshua":{"1":{"1":"Now it came to pass`)
	assert.NotContains(t, string(data), "Josue")
}

func TestIngest_SourceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := execute(t, "seed")
	require.NoError(t, err)

	_, err = execute(t, "ingest", "--source", "douay-rheims", "--url", srv.URL)
	assert.ErrorIs(t, err, ingest.ErrSourceUnavailable)
}

func TestIngest_UnknownSource(t *testing.T) {
	_, err := execute(t, "ingest", "--source", "vulgate", "--url", "http://127.0.0.1:1")
	assert.ErrorContains(t, err, "douay-rheims")
}

func TestExportIndex_RequiresPostgres(t *testing.T) {
	_, err := execute(t, "export-index", "--output", "-")
	assert.ErrorContains(t, err, "requires PostgreSQL")
}
