// Package insee provides the HTTP client for the INSEE BDM catalog service.
// The service exposes two operations: listing every available dataset and
// listing the IDBank metadata records of one dataset. Both return flat JSON
// objects that the client converts to ordered string tables.
//
// Every call is attempted exactly once: the client performs no retries, no
// caching and no rate limiting.
package insee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/Mouaadag/inseeSearchEngine/pkg/log"
	"github.com/Mouaadag/inseeSearchEngine/pkg/table"
)

const (
	// DefaultBaseURL is the public BDM catalog endpoint.
	DefaultBaseURL = "https://api.insee.fr/series/BDM/V1"

	// DefaultTokenURL issues OAuth2 bearer tokens for api.insee.fr.
	DefaultTokenURL = "https://api.insee.fr/token"

	defaultTimeout = 30 * time.Second
)

// ErrCatalogUnavailable marks a failed "list all datasets" call. The search
// pipeline reports it to the user and returns without a result.
var ErrCatalogUnavailable = errors.New("dataset catalog unavailable")

// CatalogAPI is the outbound dependency of the search pipeline. The HTTP
// client implements it; tests substitute fakes.
type CatalogAPI interface {
	// DatasetList fetches the full dataset catalog.
	DatasetList(ctx context.Context) (*table.Table, error)

	// SeriesList fetches the IDBank metadata records of one dataset.
	SeriesList(ctx context.Context, dataset string) (*table.Table, error)
}

// Options configures a Client.
type Options struct {
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// Timeout bounds each HTTP call. Zero means 30 seconds.
	Timeout time.Duration

	// ClientID and ClientSecret enable OAuth2 client-credentials
	// authentication against TokenURL. Both empty means anonymous access.
	ClientID     string
	ClientSecret string

	// TokenURL overrides DefaultTokenURL.
	TokenURL string
}

// Client talks to the INSEE BDM catalog over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a catalog client. When client credentials are configured
// the underlying HTTP client transparently obtains and refreshes bearer
// tokens.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.ClientID != "" && opts.ClientSecret != "" {
		tokenURL := opts.TokenURL
		if tokenURL == "" {
			tokenURL = DefaultTokenURL
		}
		cc := clientcredentials.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = cc.Client(context.Background())
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log.ForService("client"),
	}
}

// DatasetList fetches the full dataset catalog. Failures are wrapped in
// ErrCatalogUnavailable.
func (c *Client) DatasetList(ctx context.Context) (*table.Table, error) {
	c.logger.Debugf("fetching dataset catalog from %s", c.baseURL)

	t, err := c.fetchTable(ctx, c.baseURL+"/dataflow")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	c.logger.Debugf("catalog holds %d datasets", t.NumRows())
	return t, nil
}

// SeriesList fetches the IDBank metadata records of one dataset.
func (c *Client) SeriesList(ctx context.Context, dataset string) (*table.Table, error) {
	c.logger.Debugf("fetching IDBank list for dataset %s", dataset)

	t, err := c.fetchTable(ctx, c.baseURL+"/series/"+url.PathEscape(dataset))
	if err != nil {
		return nil, fmt.Errorf("listing series for dataset %s: %w", dataset, err)
	}
	return t, nil
}

func (c *Client) fetchTable(ctx context.Context, endpoint string) (*table.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var records []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return recordsToTable(records), nil
}
