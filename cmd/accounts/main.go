// Command accounts replays a CSV transaction log into per-client closing
// balances and prints the report to stdout.
//
// Usage:
//
//	accounts <transactions.csv>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/9876691/accounts/config"
	"github.com/9876691/accounts/ingest"
	"github.com/9876691/accounts/ledger"
	"github.com/9876691/accounts/log"
	"github.com/9876691/accounts/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewLogger(cfg.LogLevel, zap.Format(cfg.LogFormat))
	if err != nil {
		fmt.Fprintln(os.Stderr, "accounts:", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: accounts <transactions.csv>")
		os.Exit(2)
	}

	ctx := context.Background()
	runLogger := logger.With(log.String("run_id", uuid.NewString()))

	if err := run(ctx, runLogger, os.Args[1], os.Stdout); err != nil {
		runLogger.Log(ctx, log.LevelError, "run failed", log.Err(err))
		_ = runLogger.Sync(ctx)
		os.Exit(1)
	}

	_ = runLogger.Sync(ctx)
}

func run(ctx context.Context, logger log.Logger, path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	store := ledger.New()
	reader := ingest.NewReader(file, logger)

	recorded := 0

	for {
		tx, err := reader.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		store.Record(tx)
		recorded++
	}

	balances, err := store.ClosingBalances()
	if err != nil {
		return err
	}

	logger.Log(ctx, log.LevelInfo, "replay complete",
		log.Int("recorded", recorded),
		log.Int("dropped", reader.Dropped()),
		log.Int("clients", len(balances)),
	)

	return ingest.WriteReport(out, balances)
}
