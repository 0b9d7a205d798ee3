// Package export persists a search's result set to disk: a JSON snapshot of
// the whole set, a flat summary CSV and one CSV per dataset with its full
// IDBank table. Filenames embed the sanitized keyword and a per-export
// timestamp so repeated searches never silently overwrite prior runs.
//
// Timestamp resolution is one second: two exports for the same keyword
// within the same second collide on filenames. This is a documented
// limitation; the run history records a unique id per export so such runs
// stay distinguishable.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/Mouaadag/inseeSearchEngine/pkg/log"
	"github.com/Mouaadag/inseeSearchEngine/pkg/results"
)

const (
	timestampLayout    = "20060102_150405"
	dimensionDelimiter = "|"
)

// Exporter writes result sets into an output directory.
type Exporter struct {
	dir      string
	compress bool
	logger   *log.Logger

	// now is swappable in tests for deterministic filenames.
	now func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCompression gzips the JSON snapshot (".json.gz").
func WithCompression() Option {
	return func(e *Exporter) {
		e.compress = true
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// New creates an exporter targeting dir. The directory is created on the
// first Export call, not here.
func New(dir string, opts ...Option) *Exporter {
	e := &Exporter{
		dir:    dir,
		logger: log.ForService("export"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the snapshot, the summary CSV and one CSV per dataset,
// returning the written paths in that order. A single timestamp taken at
// the start of the call is shared by every filename. There is no rollback:
// when a later write fails, files already written stay on disk.
func (e *Exporter) Export(rs *results.ResultSet, keyword string) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	token := SanitizeKeyword(keyword)
	stamp := e.now().Format(timestampLayout)
	prefix := token + "_" + stamp

	var written []string

	snapshot, err := e.writeSnapshot(rs, prefix)
	if err != nil {
		return written, err
	}
	written = append(written, snapshot)

	summary, err := e.writeSummary(rs, prefix)
	if err != nil {
		return written, err
	}
	written = append(written, summary)

	for _, dr := range rs.Datasets {
		path := filepath.Join(e.dir, fmt.Sprintf("%s_%s_idbanks.csv", prefix, SanitizeKeyword(dr.Dataset)))
		if err := writeDatasetCSV(dr, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	e.logger.Infof("exported %d files for keyword %q to %s", len(written), keyword, e.dir)
	return written, nil
}

func (e *Exporter) writeSnapshot(rs *results.ResultSet, prefix string) (string, error) {
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling result set: %w", err)
	}

	name := prefix + "_results.json"
	if e.compress {
		name += ".gz"
	}
	path := filepath.Join(e.dir, name)

	if e.compress {
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("creating snapshot file: %w", err)
		}
		gz := gzip.NewWriter(f)
		if _, err := gz.Write(data); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("writing compressed snapshot: %w", err)
		}
		if err := gz.Close(); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("closing gzip stream: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("closing snapshot file: %w", err)
		}
		return path, nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

func (e *Exporter) writeSummary(rs *results.ResultSet, prefix string) (string, error) {
	summary := summaryTable(rs)
	path := filepath.Join(e.dir, prefix+"_summary.csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating summary file: %w", err)
	}
	if err := summary.WriteCSV(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing summary: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing summary file: %w", err)
	}
	return path, nil
}

func writeDatasetCSV(dr *results.DatasetResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	if err := dr.IDBanks.WriteCSV(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing dataset %s: %w", dr.Dataset, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing dataset file: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by Export back into a ResultSet.
// Gzipped snapshots are recognized by the ".gz" extension.
func LoadSnapshot(path string) (*results.ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening gzip snapshot: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		var rs results.ResultSet
		if err := json.NewDecoder(gz).Decode(&rs); err != nil {
			return nil, fmt.Errorf("decoding snapshot: %w", err)
		}
		return &rs, nil
	}

	var rs results.ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &rs, nil
}
