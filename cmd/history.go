package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Mouaadag/inseeSearchEngine/pkg/config"
	"github.com/Mouaadag/inseeSearchEngine/pkg/history"
)

// HistoryCommand creates the history command
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List past export runs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to show",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Output directory holding the run log",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return showHistory(c)
		},
	}
}

func showHistory(c *cli.Command) error {
	setupLogging(c)

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	outputDir := cfg.OutputDir
	if c.IsSet("output-dir") {
		outputDir = c.String("output-dir")
	}

	store, err := history.Open(filepath.Join(outputDir, "history.db"))
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close run log: %v\n", err)
		}
	}()

	runs, err := store.List(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No export runs recorded yet.")
		return nil
	}

	fmt.Println(titleStyle.Render("Export runs"))
	for _, run := range runs {
		fmt.Println()
		fmt.Println(headerStyle.Render(run.Keyword))
		fmt.Printf("  %s datasets, %s IDBanks, %d file(s)\n",
			formatNumber(run.Datasets), formatNumber(run.IDBanks), len(run.Files))
		fmt.Println(metaStyle.Render("  " + formatTime(run.StartedAt) + "  run " + shortID(run.ID)))
	}
	return nil
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
