package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mouaadag/inseeSearchEngine/pkg/results"
	"github.com/Mouaadag/inseeSearchEngine/pkg/table"
)

const sampleRows = 5

// Explore fetches the full IDBank table of one dataset and prints a column,
// dimension and optional sample report. The table is returned untruncated.
func (s *Service) Explore(ctx context.Context, dataset string, showSample bool) (*table.Table, error) {
	s.logger.Infof("exploring dataset %s", dataset)

	idbanks, err := s.api.SeriesList(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("exploring dataset %s: %w", dataset, err)
	}

	dims := results.Dimensions(idbanks)

	fmt.Fprintf(s.out, "Dataset %s: %d IDBanks\n", dataset, idbanks.NumRows())
	fmt.Fprintf(s.out, "Columns:    %s\n", strings.Join(idbanks.Columns, ", "))
	fmt.Fprintf(s.out, "Dimensions: %s\n", strings.Join(dims, ", "))

	if showSample && idbanks.NumRows() > 0 {
		sample := idbanks.Head(sampleRows)
		fmt.Fprintf(s.out, "Sample (%d of %d rows):\n", sample.NumRows(), idbanks.NumRows())
		for i := range sample.Rows {
			var cells []string
			for _, col := range sample.Columns {
				if v := sample.Cell(i, col); v != "" {
					cells = append(cells, col+"="+v)
				}
			}
			fmt.Fprintf(s.out, "  %s\n", strings.Join(cells, " "))
		}
	}

	return idbanks, nil
}
