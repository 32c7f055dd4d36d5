package main

import (
	"context"
	"fmt"
	"os"

	"drivestat/adapters/chart"
	"drivestat/adapters/drive"
	"drivestat/adapters/tabular"
	"drivestat/app"
	"drivestat/internal"
	"drivestat/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for local overrides (mount helper, output dir, log level)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	var (
		dataPath  string
		column    string
		sheet     string
		outputDir string
		skipMount bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse one column of a tabular dataset",
		Long: `Load a CSV or Excel dataset, compute descriptive statistics for a
target column and render its distribution as a histogram and a box plot.

The optional mount step makes a networked drive reachable before the file
is read; configure it with DRIVE_MOUNT_POINT and DRIVE_MOUNT_CMD.

Example: analyze --data-path /mnt/drive/data.xlsx --sheet 2024 --column revenue`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, dataPath, column, sheet, outputDir, skipMount)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data-path", "", "Path to the dataset (e.g. /mnt/drive/data.csv)")
	cmd.Flags().StringVar(&column, "column", "", "Column name to analyse")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name when loading from an Excel file")
	cmd.Flags().StringVar(&outputDir, "output-dir", cfg.Analysis.OutputDir, "Directory to store plots and summary text")
	cmd.Flags().BoolVar(&skipMount, "skip-mount", false, "Skip the drive mount step (useful outside mounted environments)")
	_ = cmd.MarkFlagRequired("data-path")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, dataPath, column, sheet, outputDir string, skipMount bool) error {
	logger := internal.NewDefaultLogger()

	if !skipMount {
		mounter := drive.NewMounter(cfg.Drive.MountPoint, cfg.Drive.MountCommand)
		if err := mounter.Mount(ctx); err != nil {
			// Mount trouble never stops the run; the loader reports the real failure
			logger.Warn("[Mount] %v; continuing without mount", err)
		}
	}

	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		fmt.Printf("Warning: %s does not exist on this environment. Confirm the path when the drive is mounted.\n", dataPath)
	}

	tbl, err := tabular.NewReader().Load(ctx, dataPath, sheet)
	if err != nil {
		return err
	}

	svc := app.NewAnalysisService(chart.NewRenderer(), logger)
	return svc.Analyze(ctx, tbl, column, outputDir)
}
