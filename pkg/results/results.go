// Package results defines the aggregates produced by a search: one
// DatasetResult per matched dataset and the ordered ResultSet grouping them.
// A ResultSet round-trips through JSON without losing dataset order, counts,
// dimension lists or the underlying IDBank tables.
package results

import "github.com/Mouaadag/inseeSearchEngine/pkg/table"

// ExcludedColumns are the IDBank table columns that are never dimensions:
// the identifier in both casings, the two title fields, the unit and the
// unit multiplier. Comparison is case-sensitive.
var ExcludedColumns = []string{"idbank", "IDBANK", "title_fr", "title_en", "unit", "unit_mult"}

// DatasetResult is the per-dataset aggregate: identifier, display name,
// (possibly truncated) record count, ordered dimension column names and the
// full IDBank table. Immutable after construction.
type DatasetResult struct {
	Dataset    string       `json:"dataset"`
	Name       string       `json:"name"`
	NIDBanks   int          `json:"n_idbanks"`
	Dimensions []string     `json:"dimensions"`
	IDBanks    *table.Table `json:"idbanks"`
}

// NewDatasetResult builds the aggregate for one dataset from its already
// truncated IDBank table.
func NewDatasetResult(dataset, name string, idbanks *table.Table) *DatasetResult {
	return &DatasetResult{
		Dataset:    dataset,
		Name:       name,
		NIDBanks:   idbanks.NumRows(),
		Dimensions: Dimensions(idbanks),
		IDBanks:    idbanks,
	}
}

// Dimensions returns the dimension columns of an IDBank table: every column
// except the fixed excluded set, in table column order.
func Dimensions(t *table.Table) []string {
	excluded := make(map[string]bool, len(ExcludedColumns))
	for _, c := range ExcludedColumns {
		excluded[c] = true
	}
	dims := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !excluded[c] {
			dims = append(dims, c)
		}
	}
	return dims
}

// ResultSet holds the datasets matched by one search call, in catalog match
// order. ExportedFiles lists the paths written by export, when it ran.
type ResultSet struct {
	Keyword  string           `json:"keyword"`
	Datasets []*DatasetResult `json:"datasets"`

	ExportedFiles []string `json:"-"`
}

// NewResultSet creates an empty result set for a keyword.
func NewResultSet(keyword string) *ResultSet {
	return &ResultSet{Keyword: keyword}
}

// Add appends a dataset result, preserving insertion order.
func (rs *ResultSet) Add(dr *DatasetResult) {
	rs.Datasets = append(rs.Datasets, dr)
}

// Len returns the number of datasets in the set.
func (rs *ResultSet) Len() int {
	return len(rs.Datasets)
}

// Get returns the result for a dataset identifier.
func (rs *ResultSet) Get(dataset string) (*DatasetResult, bool) {
	for _, dr := range rs.Datasets {
		if dr.Dataset == dataset {
			return dr, true
		}
	}
	return nil, false
}

// TotalIDBanks sums the record counts across all datasets.
func (rs *ResultSet) TotalIDBanks() int {
	total := 0
	for _, dr := range rs.Datasets {
		total += dr.NIDBanks
	}
	return total
}
