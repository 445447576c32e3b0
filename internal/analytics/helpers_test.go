package analytics

import (
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// d membuat sel tanggal dari "2006-01-02"; string kosong menjadi Null.
func d(s string) model.Value {
	if s == "" {
		return model.Null
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return model.Date(t)
}

func s(v string) model.Value {
	return model.Cell(v)
}

func rows(cols []string, data ...[]model.Value) model.Table {
	return model.NewTable(cols, data)
}
