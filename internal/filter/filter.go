package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

var ErrInvalidDateRange = errors.New("tanggal mulai harus sebelum tanggal akhir")

// Criteria adalah pilihan filter dari UI. Nilai nol berarti tanpa filter.
type Criteria struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Categories map[string][]string
	ActiveOnly bool
	// Reference dipakai untuk filter aktif saja.
	Reference time.Time
}

func (c Criteria) Validate() error {
	if c.DateFrom != nil && c.DateTo != nil && c.DateFrom.After(*c.DateTo) {
		return ErrInvalidDateRange
	}
	return nil
}

// Result adalah tabel hasil filter dan daftar filter yang benar-benar dipakai.
type Result struct {
	Table   model.Table
	Applied []string
	NoData  bool
}

// Apply menerapkan filter ke tabel kanonik. Selalu dipanggil dengan tabel
// kanonik, bukan hasil filter sebelumnya.
func Apply(canonical model.Table, c Criteria) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	t := canonical
	var applied []string

	// 1. Rentang tanggal masuk
	if (c.DateFrom != nil || c.DateTo != nil) && t.Has(model.KolomTanggalMasuk) {
		cur := t
		t = cur.Filter(func(r int) bool {
			masuk, ok := cur.Cell(r, model.KolomTanggalMasuk).Time()
			if !ok {
				return false
			}
			if c.DateFrom != nil && masuk.Before(day(*c.DateFrom)) {
				return false
			}
			if c.DateTo != nil && masuk.After(day(*c.DateTo)) {
				return false
			}
			return true
		})
		applied = append(applied, describeRange(c.DateFrom, c.DateTo))
	}

	// 2. Filter kategori
	for _, col := range categoryOrder(c.Categories) {
		values := c.Categories[col]
		if len(values) == 0 || !t.Has(col) {
			continue
		}
		accept := make(map[string]bool, len(values))
		for _, v := range values {
			accept[v] = true
		}
		cur := t
		t = cur.Filter(func(r int) bool {
			v := cur.Cell(r, col)
			return !v.IsNull() && accept[v.String()]
		})
		applied = append(applied, fmt.Sprintf("%s: %s", col, strings.Join(values, ", ")))
	}

	// 3. Hanya karyawan aktif
	if c.ActiveOnly {
		t = analytics.ActiveOnly(t, c.Reference)
		applied = append(applied, "Hanya karyawan aktif per "+c.Reference.Format("02/01/2006"))
	}

	if len(applied) == 0 {
		t = canonical.Clone()
	}
	return Result{Table: t, Applied: applied, NoData: t.Empty()}, nil
}

// categoryOrder: kolom filter dashboard dulu sesuai urutan tampil, lalu
// kolom lain urut abjad.
func categoryOrder(categories map[string][]string) []string {
	out := make([]string, 0, len(categories))
	seen := map[string]bool{}
	for _, col := range model.FilterColumns {
		if _, ok := categories[col]; ok {
			out = append(out, col)
			seen[col] = true
		}
	}
	var rest []string
	for col := range categories {
		if !seen[col] {
			rest = append(rest, col)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func describeRange(from, to *time.Time) string {
	f, t := "-", "-"
	if from != nil {
		f = from.Format("02/01/2006")
	}
	if to != nil {
		t = to.Format("02/01/2006")
	}
	return fmt.Sprintf("%s: %s - %s", model.KolomTanggalMasuk, f, t)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
