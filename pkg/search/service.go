package search

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Mouaadag/inseeSearchEngine/pkg/catalog"
	"github.com/Mouaadag/inseeSearchEngine/pkg/export"
	"github.com/Mouaadag/inseeSearchEngine/pkg/insee"
	"github.com/Mouaadag/inseeSearchEngine/pkg/log"
	"github.com/Mouaadag/inseeSearchEngine/pkg/results"
	"github.com/Mouaadag/inseeSearchEngine/pkg/table"
)

// DefaultOutputDir is where exports land when no directory is configured.
const DefaultOutputDir = "insee_results"

// Options configures one Search call.
type Options struct {
	// MaxDatasets caps how many matched datasets are processed, keeping
	// the first N in catalog order. Defaults to 20.
	MaxDatasets int

	// MaxIDBanksPerDataset caps the rows kept per dataset, preserving the
	// returned order. Defaults to 100.
	MaxIDBanksPerDataset int

	// Save enables exporting the result set to OutputDir.
	Save bool

	// OutputDir receives the exported files. Defaults to DefaultOutputDir.
	OutputDir string

	// FoldDiacritics strips accents from keyword and catalog cells before
	// matching.
	FoldDiacritics bool

	// CompressSnapshots gzips the JSON snapshot on export.
	CompressSnapshots bool
}

// DefaultOptions returns the default search parameters with saving enabled.
func DefaultOptions() Options {
	return Options{
		MaxDatasets:          20,
		MaxIDBanksPerDataset: 100,
		Save:                 true,
		OutputDir:            DefaultOutputDir,
	}
}

func (o *Options) applyDefaults() {
	if o.MaxDatasets <= 0 {
		o.MaxDatasets = 20
	}
	if o.MaxIDBanksPerDataset <= 0 {
		o.MaxIDBanksPerDataset = 100
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
}

// Service runs the search pipeline: fetch the catalog, match by keyword,
// extract IDBank metadata per matched dataset, and optionally export. The
// pipeline is strictly sequential; datasets are processed one at a time in
// catalog order.
type Service struct {
	api    insee.CatalogAPI
	logger *log.Logger
	out    io.Writer
}

// NewService creates a search service on top of a catalog API.
func NewService(api insee.CatalogAPI) *Service {
	return &Service{
		api:    api,
		logger: log.ForService("search"),
		out:    os.Stdout,
	}
}

// SetOutput redirects the textual report, mainly for tests.
func (s *Service) SetOutput(w io.Writer) {
	if w != nil {
		s.out = w
	}
}

// Search matches keyword against the dataset catalog and extracts the IDBank
// metadata of every matched dataset. A failed catalog fetch returns an error
// wrapping insee.ErrCatalogUnavailable. A failed or empty per-dataset fetch
// is logged and skipped; it never fails the search. A keyword with zero
// matches returns an empty result set and prints suggestion text.
func (s *Service) Search(ctx context.Context, keyword string, opts Options) (*results.ResultSet, error) {
	opts.applyDefaults()

	s.logger.Infof("searching catalog for %q", keyword)

	cat, err := s.api.DatasetList(ctx)
	if err != nil {
		s.logger.Errorf("catalog fetch failed: %v", err)
		return nil, err
	}

	matched := catalog.Filter(cat, keyword, opts.MaxDatasets, opts.FoldDiacritics)
	rs := results.NewResultSet(keyword)

	if matched.NumRows() == 0 {
		s.printNoMatches(keyword)
		return rs, nil
	}

	if total := catalog.CountMatches(cat, keyword, opts.FoldDiacritics); total > matched.NumRows() {
		s.logger.Infof("keeping first %d of %d matching datasets", matched.NumRows(), total)
	}
	fmt.Fprintf(s.out, "Found %d matching dataset(s) for %q\n", matched.NumRows(), keyword)

	for _, row := range matched.Rows {
		dr := s.extract(ctx, row, opts.MaxIDBanksPerDataset)
		if dr == nil {
			continue
		}
		rs.Add(dr)
		fmt.Fprintf(s.out, "  %s (%s): %d IDBanks, dimensions: %v\n",
			dr.Dataset, dr.Name, dr.NIDBanks, dr.Dimensions)
	}

	fmt.Fprintf(s.out, "Extracted %d IDBanks across %d dataset(s)\n", rs.TotalIDBanks(), rs.Len())

	if opts.Save && rs.Len() > 0 {
		if err := s.export(rs, keyword, opts); err != nil {
			return rs, err
		}
	}

	return rs, nil
}

// extract fetches and truncates one dataset's IDBank table. A nil return
// means the dataset was skipped (fetch failure or empty table).
func (s *Service) extract(ctx context.Context, row table.Row, maxIDBanks int) *results.DatasetResult {
	id := catalog.ID(row)
	if id == "" {
		s.logger.Warnf("skipping catalog row without identifier")
		return nil
	}

	idbanks, err := s.api.SeriesList(ctx, id)
	if err != nil {
		s.logger.Warnf("skipping dataset %s: %v", id, err)
		return nil
	}
	if idbanks.NumRows() == 0 {
		s.logger.Warnf("skipping dataset %s: no IDBanks returned", id)
		return nil
	}

	if idbanks.NumRows() > maxIDBanks {
		s.logger.Debugf("truncating dataset %s to %d of %d IDBanks", id, maxIDBanks, idbanks.NumRows())
	}

	return results.NewDatasetResult(id, catalog.DisplayName(row), idbanks.Head(maxIDBanks))
}

func (s *Service) export(rs *results.ResultSet, keyword string, opts Options) error {
	var exportOpts []export.Option
	if opts.CompressSnapshots {
		exportOpts = append(exportOpts, export.WithCompression())
	}

	files, err := export.New(opts.OutputDir, exportOpts...).Export(rs, keyword)
	if err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}
	rs.ExportedFiles = files

	fmt.Fprintf(s.out, "Saved %d file(s) to %s\n", len(files), opts.OutputDir)
	return nil
}

func (s *Service) printNoMatches(keyword string) {
	fmt.Fprintf(s.out, "No datasets match %q.\n", keyword)
	fmt.Fprintln(s.out, "Suggestions:")
	fmt.Fprintln(s.out, "  - broaden the term (e.g. \"prix\" instead of \"prix du tabac\")")
	fmt.Fprintln(s.out, "  - try the French or English variant of the keyword")
	fmt.Fprintln(s.out, "  - check the spelling")
}
