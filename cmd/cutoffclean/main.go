package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/cutoffs/internal/config"
	"github.com/JonMunkholm/cutoffs/internal/core"
	_ "github.com/JonMunkholm/cutoffs/internal/core/layouts" // Register all layouts
	"github.com/JonMunkholm/cutoffs/internal/logging"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var nextSteps = []string{
	"1. Upload the cleaned CSV to the cutoffs database",
	"2. Create the nursing_cutoffs table",
	"3. Update your .env with the database credentials",
}

func main() {
	// Load .env file if it exists; real environment variables win
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Errors are reported, not turned into a crash or a non-zero exit.
	if err := run(ctx, os.Stdout); err != nil {
		logging.FromContext(ctx).Error("run failed", "error", err)
		fmt.Fprintf(os.Stdout, "❌ Error: %s\n", core.FormatUserError(err))
		return
	}

	fmt.Fprintln(os.Stdout, "\n🎉 Data cleaning completed successfully!")
	fmt.Fprintln(os.Stdout, "\n📋 Next steps:")
	for _, step := range nextSteps {
		fmt.Fprintln(os.Stdout, step)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs go to stderr; stdout carries the report
	logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.FromContext(ctx)
	logger.Info("configuration loaded", "config", cfg.String())

	layout, err := core.Lookup(cfg.Cutoff.Layout)
	if err != nil {
		return err
	}

	normalizer, err := core.NewNormalizer(core.Options{
		Layout:      layout,
		Year:        cfg.Cutoff.Year,
		SampleCount: cfg.Cutoff.SampleCount,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "🧹 Starting CSV cleaning process...")

	res, err := normalizer.Run(ctx, core.Files{
		Input:    cfg.Cutoff.InputPath,
		Output:   cfg.Cutoff.OutputPath,
		Encoding: cfg.Cutoff.InputEncoding,
	})
	if err != nil {
		return err
	}

	return core.WriteReport(out, res, cfg.Cutoff.OutputPath)
}
