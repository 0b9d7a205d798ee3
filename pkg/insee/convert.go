package insee

import (
	"sort"
	"strconv"

	"github.com/Mouaadag/inseeSearchEngine/pkg/table"
)

// preferredColumns are hoisted to the front of the column order when present,
// so identifiers and display names lead CSV output and reports. The rest of
// the columns follow in sorted order.
var preferredColumns = []string{"id", "ID", "idbank", "IDBANK", "Name", "name", "title_fr", "title_en"}

// recordsToTable flattens decoded JSON objects into an ordered string table.
// The column set is the union of all keys; cell values are stringified
// scalars (nested values are dropped).
func recordsToTable(records []map[string]any) *table.Table {
	seen := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			seen[k] = true
		}
	}

	var rest []string
	for k := range seen {
		if !isPreferred(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	var columns []string
	for _, k := range preferredColumns {
		if seen[k] {
			columns = append(columns, k)
		}
	}
	columns = append(columns, rest...)

	t := table.New(columns...)
	for _, rec := range records {
		row := make(table.Row, len(rec))
		for k, v := range rec {
			if s, ok := stringifyScalar(v); ok {
				row[k] = s
			}
		}
		t.Append(row)
	}
	return t
}

func isPreferred(column string) bool {
	for _, p := range preferredColumns {
		if p == column {
			return true
		}
	}
	return false
}

func stringifyScalar(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case nil:
		return "", true
	default:
		return "", false
	}
}
