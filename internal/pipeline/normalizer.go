package pipeline

import (
	"strings"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

// Normalizer menyeragamkan nama kolom dan membuang kolom yang kosong total.
type Normalizer struct {
	aliases []Alias
}

// NewNormalizer memakai DefaultAliases lalu alias tambahan (bila ada).
func NewNormalizer(extra ...Alias) *Normalizer {
	aliases := make([]Alias, 0, len(DefaultAliases)+len(extra))
	aliases = append(aliases, DefaultAliases...)
	aliases = append(aliases, extra...)
	return &Normalizer{aliases: aliases}
}

// Rename mengganti nama kolom sesuai tabel alias. Kolom yang tidak dikenal
// dibiarkan. Rename tidak pernah menghasilkan nama kolom ganda: bila nama
// kanonik sudah ada, kolom sumber tetap memakai nama aslinya.
func (n *Normalizer) Rename(t model.Table) model.Table {
	out := t.Clone()
	for _, a := range n.aliases {
		if a.From == a.To {
			continue
		}
		i := out.Index(a.From)
		if i < 0 || out.Has(a.To) {
			continue
		}
		out.Columns[i] = a.To
	}
	return out
}

// Normalize = Rename + DropEmptyColumns.
func (n *Normalizer) Normalize(t model.Table) (model.Table, []string) {
	return DropEmptyColumns(n.Rename(t))
}

// DropEmptyColumns membuang kolom yang seluruh selnya kosong dan
// mengembalikan nama kolom yang dibuang. Tabel tanpa baris tidak diubah.
func DropEmptyColumns(t model.Table) (model.Table, []string) {
	if t.Empty() {
		return t.Clone(), nil
	}
	var dropped []string
	for i, col := range t.Columns {
		empty := true
		for _, row := range t.Rows {
			if i < len(row) && !isBlank(row[i]) {
				empty = false
				break
			}
		}
		if empty {
			dropped = append(dropped, col)
		}
	}
	if len(dropped) == 0 {
		return t.Clone(), nil
	}
	return t.DropColumns(dropped...), dropped
}

func isBlank(v model.Value) bool {
	return v.IsNull() || (v.Kind == model.KindText && strings.TrimSpace(v.Str) == "")
}
