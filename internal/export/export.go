package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/loader"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
)

// WriteCSV menulis tabel sebagai CSV UTF-8. Tanggal ditulis 2006-01-02,
// nilai kosong ditulis sebagai string kosong.
func WriteCSV(w io.Writer, t model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("gagal menulis header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = row[i].String()
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("gagal menulis baris: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV mengembalikan isi export dalam bentuk bytes.
func CSV(t model.Table) []byte {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, t)
	return buf.Bytes()
}

// ParseCSV membaca kembali hasil export dan mengembalikan kolom tanggal
// ke tipe tanggal.
func ParseCSV(data []byte) (model.Table, error) {
	t, err := loader.Load("export.csv", bytes.NewReader(data))
	if err != nil {
		return model.Table{}, err
	}
	for _, col := range model.DateColumns {
		values := t.Column(col)
		if values == nil {
			continue
		}
		typed := make([]model.Value, len(values))
		for i, v := range values {
			if v.IsNull() {
				continue
			}
			if d, ok := pipeline.ParseDate(v.String()); ok {
				typed[i] = model.Date(d)
			}
		}
		t = t.WithColumn(col, typed)
	}
	return t, nil
}

// FileName: prefix_YYYYMMDD_HHMMSS.csv
func FileName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102_150405"))
}
