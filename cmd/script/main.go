package main

import (
	"context"
	"fmt"
	"insightengine/api"
	"insightengine/cmd"
	"insightengine/internal/db"
	"insightengine/internal/logger"
	"insightengine/internal/util"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvFile string
	symbol  string
	start   string
	end     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "insightengine-script",
		Short: "Maintenance commands for the insightengine database",
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the stock and historical_price tables if they don't exist",
		RunE: func(c *cobra.Command, args []string) error {
			return withHandler(c.Context(), func(ctx context.Context, handler *api.ApiHandler) error {
				return db.Migrate(ctx, handler.Db)
			})
		},
	}

	importCmd := &cobra.Command{
		Use:   "import-prices",
		Short: "Upsert daily prices from a csv with columns symbol,date,open,high,low,close,volume",
		RunE: func(c *cobra.Command, args []string) error {
			f, err := os.Open(csvFile)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", csvFile, err)
			}
			defer f.Close()

			return withHandler(c.Context(), func(ctx context.Context, handler *api.ApiHandler) error {
				tx, err := handler.Db.BeginTx(ctx, nil)
				if err != nil {
					return err
				}
				defer tx.Rollback()

				n, err := handler.IngestService.ImportCsv(ctx, tx, f)
				if err != nil {
					return err
				}
				if err := tx.Commit(); err != nil {
					return fmt.Errorf("failed to commit import: %w", err)
				}

				logger.FromContext(ctx).Infow("import complete", "file", csvFile, "numRows", n)
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&csvFile, "file", "", "Path to the csv file")
	importCmd.MarkFlagRequired("file")

	backfillCmd := &cobra.Command{
		Use:   "backfill",
		Short: "Fetch daily bars from Yahoo for a registered stock",
		RunE: func(c *cobra.Command, args []string) error {
			startDate, err := util.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			endDate := util.TruncateToDate(time.Now().UTC())
			if end != "" {
				endDate, err = util.ParseDate(end)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
			}

			return withHandler(c.Context(), func(ctx context.Context, handler *api.ApiHandler) error {
				tx, err := handler.Db.BeginTx(ctx, nil)
				if err != nil {
					return err
				}
				defer tx.Rollback()

				n, err := handler.IngestService.Backfill(ctx, tx, symbol, startDate, endDate)
				if err != nil {
					return err
				}
				if err := tx.Commit(); err != nil {
					return fmt.Errorf("failed to commit backfill: %w", err)
				}

				logger.FromContext(ctx).Infow("backfill complete", "symbol", symbol, "numBars", n)
				return nil
			})
		},
	}
	backfillCmd.Flags().StringVar(&symbol, "symbol", "", "Stock symbol, must already be registered")
	backfillCmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	backfillCmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), defaults to today")
	backfillCmd.MarkFlagRequired("symbol")
	backfillCmd.MarkFlagRequired("start")

	rootCmd.AddCommand(migrateCmd, importCmd, backfillCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		zap.S().Errorw("command failed", "error", err)
		os.Exit(1)
	}
}

func withHandler(ctx context.Context, fn func(context.Context, *api.ApiHandler) error) error {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	handler, err := cmd.InitializeDependencies(secrets)
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	ctx = logger.NewContext(ctx, zap.S().With("env", secrets.Env))
	return fn(ctx, handler)
}
