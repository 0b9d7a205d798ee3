package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ExploreCommand creates the explore command
func ExploreCommand() *cli.Command {
	return &cli.Command{
		Name:      "explore",
		Usage:     "Show the columns, dimensions and a sample of one dataset",
		ArgsUsage: "<dataset-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "sample",
				Usage: "Print a few sample IDBank rows",
				Value: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			dataset := c.Args().First()
			if dataset == "" {
				return fmt.Errorf("usage: explore <dataset-id>")
			}
			return runExplore(ctx, c, dataset)
		},
	}
}

func runExplore(ctx context.Context, c *cli.Command, dataset string) error {
	setupLogging(c)

	service, _, err := newServiceFromConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(titleStyle.Render("Dataset " + dataset))

	_, err = service.Explore(ctx, dataset, c.Bool("sample"))
	return err
}
