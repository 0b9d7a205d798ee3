package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/Mouaadag/inseeSearchEngine/pkg/config"
	"github.com/Mouaadag/inseeSearchEngine/pkg/insee"
	"github.com/Mouaadag/inseeSearchEngine/pkg/log"
	"github.com/Mouaadag/inseeSearchEngine/pkg/search"
)

// setupLogging applies the global --debug flag before a command runs.
func setupLogging(c *cli.Command) {
	if c.Bool("debug") {
		log.SetGlobalDebug(true)
	}
}

// newCatalogClient builds the HTTP catalog client from the config.
func newCatalogClient(cfg *config.Config) *insee.Client {
	opts := insee.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout.Duration,
	}
	if cfg.Auth != nil {
		opts.ClientID = cfg.Auth.ClientID
		opts.ClientSecret = cfg.Auth.ClientSecret
		opts.TokenURL = cfg.Auth.TokenURL
	}
	return insee.NewClient(opts)
}

// newServiceFromConfig loads the config file and wires up the search
// service against the live catalog endpoint.
func newServiceFromConfig(configPath string) (*search.Service, *config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	return search.NewService(newCatalogClient(cfg)), cfg, nil
}
