package pipeline

import (
	"strings"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

type Options struct {
	// Reference adalah "hari ini" untuk aturan override status.
	Reference time.Time
	// CleanColumns dibersihkan dengan CleanText.
	CleanColumns []string
	// UpperColumns di-upper setelah dibersihkan.
	UpperColumns []string
}

func DefaultOptions(ref time.Time) Options {
	return Options{
		Reference: ref,
		CleanColumns: []string{
			model.KolomSubUnitKerja,
			model.KolomUnitKerja,
			model.KolomLokasiKerja,
			model.KolomKlasifikasiJabatan,
			model.KolomJabatan,
			model.KolomDepartmentName,
			model.KolomKelasKapal,
			model.KolomSegmen,
			model.KolomBandLevel,
		},
		UpperColumns: []string{model.KolomSubUnitKerja},
	}
}

// Canonicalizer menyeragamkan isi kolom status, gender, tanggal, dan
// kategori. Kolom yang tidak ada di tabel dilewati di setiap langkah.
type Canonicalizer struct {
	opts Options
	ref  time.Time
}

func NewCanonicalizer(opts Options) *Canonicalizer {
	return &Canonicalizer{opts: opts, ref: dateOnly(opts.Reference)}
}

func (c *Canonicalizer) Canonicalize(t model.Table) model.Table {
	out := t.Clone()

	// 1. Klasifikasi status kepegawaian
	statusIdx := out.Index(model.KolomStatusKepegawaian)
	if statusIdx >= 0 {
		mapColumn(out, statusIdx, func(s string) string {
			return rewrite(StatusRules, strings.ToUpper(strings.TrimSpace(s)))
		})
	}

	// 2. Klasifikasi jenis kelamin
	if i := out.Index(model.KolomJenisKelamin); i >= 0 {
		mapColumn(out, i, func(s string) string {
			return rewrite(GenderRules, strings.ToUpper(strings.TrimSpace(s)))
		})
	}

	// 3. Konversi tanggal (gagal parse -> kosong)
	for _, col := range model.DateColumns {
		i := out.Index(col)
		if i < 0 {
			continue
		}
		for _, row := range out.Rows {
			row[i] = toDate(row[i])
		}
	}

	// 4. Override status dari tanggal pensiun / keluar
	if statusIdx >= 0 {
		for _, rule := range StatusOverrides {
			di := out.Index(rule.Column)
			if di < 0 {
				continue
			}
			for _, row := range out.Rows {
				if rule.Matches(row[di], c.ref) {
					row[statusIdx] = model.Text(rule.Status)
				}
			}
		}

		// 5. Status Aktif diturunkan dari status final
		aktif := make([]model.Value, len(out.Rows))
		for r, row := range out.Rows {
			if row[statusIdx].IsNull() {
				continue
			}
			aktif[r] = model.Text(StatusAktif(row[statusIdx].String()))
		}
		out = out.WithColumn(model.KolomStatusAktif, aktif)
	}

	// 6. Bersihkan teks kategori
	for _, col := range c.opts.CleanColumns {
		i := out.Index(col)
		if i < 0 {
			continue
		}
		upper := contains(c.opts.UpperColumns, col)
		for _, row := range out.Rows {
			if row[i].Kind != model.KindText {
				continue
			}
			s := CleanText(row[i].Str)
			if upper {
				s = strings.ToUpper(s)
			}
			// Hasil bersih "" tetap teks, bukan null
			row[i] = model.Text(s)
		}
	}

	// 7. Buang kolom yang seluruhnya null (lagi)
	return dropNullColumns(out)
}

// dropNullColumns hanya membuang kolom yang semua selnya null, berbeda
// dengan DropEmptyColumns yang juga menganggap teks kosong sebagai kosong.
func dropNullColumns(t model.Table) model.Table {
	if t.Empty() {
		return t
	}
	var dropped []string
	for i, col := range t.Columns {
		null := true
		for _, row := range t.Rows {
			if i < len(row) && !row[i].IsNull() {
				null = false
				break
			}
		}
		if null {
			dropped = append(dropped, col)
		}
	}
	if len(dropped) == 0 {
		return t
	}
	return t.DropColumns(dropped...)
}

func mapColumn(t model.Table, i int, fn func(string) string) {
	for _, row := range t.Rows {
		if row[i].IsNull() {
			continue
		}
		row[i] = model.Cell(fn(row[i].String()))
	}
}

func toDate(v model.Value) model.Value {
	switch v.Kind {
	case model.KindDate:
		return v
	case model.KindText:
		if t, ok := ParseDate(v.Str); ok {
			return model.Date(t)
		}
	}
	return model.Null
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
