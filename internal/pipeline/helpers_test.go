package pipeline

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

func table(cols []string, rows ...[]string) model.Table {
	out := make([][]model.Value, len(rows))
	for r, row := range rows {
		vals := make([]model.Value, len(cols))
		for i := range cols {
			if i < len(row) {
				vals[i] = model.Cell(row[i])
			}
		}
		out[r] = vals
	}
	return model.NewTable(cols, out)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
