package export

import (
	"strconv"
	"strings"

	"github.com/Mouaadag/inseeSearchEngine/pkg/results"
	"github.com/Mouaadag/inseeSearchEngine/pkg/table"
)

// SanitizeKeyword derives a filename-safe token from a keyword: every rune
// that is not an ASCII letter or digit becomes an underscore.
func SanitizeKeyword(keyword string) string {
	out := make([]rune, 0, len(keyword))
	for _, r := range keyword {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// summaryTable flattens a result set into the summary CSV layout: one row
// per dataset with its id, name, record count and dimensions joined by the
// fixed delimiter.
func summaryTable(rs *results.ResultSet) *table.Table {
	t := table.New("dataset", "name", "n_idbanks", "dimensions")
	for _, dr := range rs.Datasets {
		t.Append(table.Row{
			"dataset":    dr.Dataset,
			"name":       dr.Name,
			"n_idbanks":  strconv.Itoa(dr.NIDBanks),
			"dimensions": strings.Join(dr.Dimensions, dimensionDelimiter),
		})
	}
	return t
}
