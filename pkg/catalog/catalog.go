// Package catalog implements keyword matching over the fetched dataset
// catalog. A row matches when the keyword appears case-insensitively as a
// substring of any textual column value. Matching never ranks: results keep
// catalog order, and truncation keeps a prefix of it.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Mouaadag/inseeSearchEngine/pkg/table"
)

// Filter returns the catalog rows matching keyword, in original catalog
// order, truncated to at most max rows (max <= 0 means no limit). With fold
// set, diacritics are stripped from both keyword and cells before comparing,
// so "enquete" matches "Enquête".
func Filter(catalog *table.Table, keyword string, max int, fold bool) *table.Table {
	candidates := catalog.TextColumns()
	needle := normalize(keyword, fold)

	matched := table.New(catalog.Columns...)
	for _, row := range catalog.Rows {
		if max > 0 && matched.NumRows() >= max {
			break
		}
		if rowMatches(row, candidates, needle, fold) {
			matched.Append(row)
		}
	}
	return matched
}

// CountMatches returns how many catalog rows match keyword, without any
// truncation. Used to report how many results a max limit cut off.
func CountMatches(catalog *table.Table, keyword string, fold bool) int {
	candidates := catalog.TextColumns()
	needle := normalize(keyword, fold)

	n := 0
	for _, row := range catalog.Rows {
		if rowMatches(row, candidates, needle, fold) {
			n++
		}
	}
	return n
}

func rowMatches(row table.Row, candidates []string, needle string, fold bool) bool {
	for _, col := range candidates {
		if strings.Contains(normalize(row[col], fold), needle) {
			return true
		}
	}
	return false
}

// normalize lowercases s and optionally strips combining marks (NFD
// decomposition, drop Mn runes, NFC recomposition).
func normalize(s string, fold bool) string {
	s = strings.ToLower(s)
	if !fold {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// ID returns the dataset identifier of a catalog row: the "id" column,
// falling back to "ID".
func ID(row table.Row) string {
	if v := row["id"]; v != "" {
		return v
	}
	return row["ID"]
}

// DisplayName resolves the human-readable name of a catalog row: the "Name"
// column, falling back to "name", falling back to the identifier.
func DisplayName(row table.Row) string {
	if v := row["Name"]; v != "" {
		return v
	}
	if v := row["name"]; v != "" {
		return v
	}
	return ID(row)
}
