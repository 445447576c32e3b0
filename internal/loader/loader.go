package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// ErrUnreadableSource: file tidak bisa dibaca sama sekali. Tidak ada tabel
// sebagian yang dikembalikan.
var ErrUnreadableSource = errors.New("file tidak dapat dibaca")

// SupportedExtensions adalah format unggahan yang diterima.
var SupportedExtensions = []string{".csv", ".xls", ".xlsx"}

// Load membaca file berdasarkan ekstensinya.
func Load(name string, r io.Reader) (model.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readXLSX(data)
	case ".xls":
		rows, err = readXLS(data)
	default:
		return model.Table{}, fmt.Errorf("%w: format %q tidak didukung (gunakan CSV, XLS, atau XLSX)", ErrUnreadableSource, ext)
	}
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	return buildTable(rows)
}

// buildTable: baris pertama yang tidak kosong adalah header.
func buildTable(rows [][]string) (model.Table, error) {
	start := -1
	for i, row := range rows {
		if !blankRow(row) {
			start = i
			break
		}
	}
	if start < 0 {
		return model.Table{}, fmt.Errorf("%w: tidak ada baris header", ErrUnreadableSource)
	}

	columns := headerNames(rows[start])
	body := rows[start+1:]
	out := make([][]model.Value, 0, len(body))
	for _, row := range body {
		vals := make([]model.Value, len(columns))
		for i := range columns {
			if i < len(row) {
				vals[i] = model.Cell(row[i])
			}
		}
		out = append(out, vals)
	}
	return model.NewTable(columns, out), nil
}

// headerNames: header kosong menjadi "Unnamed: i", nama ganda diberi
// akhiran ".1", ".2", dst.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = h + "." + strconv.Itoa(n+1)
		} else {
			seen[h] = 0
		}
		names[i] = h
	}
	return names
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
