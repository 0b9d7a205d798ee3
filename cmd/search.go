package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/Mouaadag/inseeSearchEngine/pkg/config"
	"github.com/Mouaadag/inseeSearchEngine/pkg/history"
	"github.com/Mouaadag/inseeSearchEngine/pkg/results"
	"github.com/Mouaadag/inseeSearchEngine/pkg/search"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the dataset catalog by keyword and extract IDBank metadata",
		ArgsUsage: "<keyword>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max-datasets",
				Usage: "Maximum number of matched datasets to process",
			},
			&cli.IntFlag{
				Name:  "max-idbanks",
				Usage: "Maximum number of IDBanks kept per dataset",
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Export results to the output directory",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory receiving exported files",
			},
			&cli.BoolFlag{
				Name:  "fold",
				Usage: "Strip accents when matching (\"enquete\" matches \"Enquête\")",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			keyword := c.Args().First()
			if keyword == "" {
				return fmt.Errorf("usage: search <keyword>")
			}
			return runSearch(ctx, c, keyword)
		},
	}
}

func runSearch(ctx context.Context, c *cli.Command, keyword string) error {
	setupLogging(c)

	service, cfg, err := newServiceFromConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := searchOptions(c, cfg)

	fmt.Println(titleStyle.Render("INSEE catalog search: " + keyword))

	rs, err := service.Search(ctx, keyword, opts)
	if err != nil {
		return err
	}

	if cfg.History && len(rs.ExportedFiles) > 0 {
		if err := recordRun(rs, keyword, opts.OutputDir); err != nil {
			// The search itself succeeded; a broken history log is not fatal.
			fmt.Println(metaStyle.Render("warning: could not record run: " + err.Error()))
		}
	}

	return nil
}

// searchOptions merges config defaults with explicitly set flags.
func searchOptions(c *cli.Command, cfg *config.Config) search.Options {
	opts := search.Options{
		MaxDatasets:          cfg.MaxDatasets,
		MaxIDBanksPerDataset: cfg.MaxIDBanksPerDataset,
		Save:                 c.Bool("save"),
		OutputDir:            cfg.OutputDir,
		FoldDiacritics:       cfg.FoldDiacritics,
		CompressSnapshots:    cfg.CompressSnapshots,
	}
	if c.IsSet("max-datasets") {
		opts.MaxDatasets = c.Int("max-datasets")
	}
	if c.IsSet("max-idbanks") {
		opts.MaxIDBanksPerDataset = c.Int("max-idbanks")
	}
	if c.IsSet("output-dir") {
		opts.OutputDir = c.String("output-dir")
	}
	if c.IsSet("fold") {
		opts.FoldDiacritics = c.Bool("fold")
	}
	return opts
}

func recordRun(rs *results.ResultSet, keyword, outputDir string) error {
	store, err := history.Open(filepath.Join(outputDir, "history.db"))
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	_, err = store.Record(history.Run{
		Keyword:  keyword,
		Datasets: rs.Len(),
		IDBanks:  rs.TotalIDBanks(),
		Files:    rs.ExportedFiles,
	})
	return err
}
