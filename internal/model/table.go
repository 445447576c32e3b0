package model

// Table adalah tabel karyawan: kolom bernama dan baris berurutan.
// Semua operasi mengembalikan Table baru; receiver tidak pernah diubah.
type Table struct {
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

func NewTable(columns []string, rows [][]Value) Table {
	return Table{Columns: columns, Rows: rows}
}

func (t Table) Len() int {
	return len(t.Rows)
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Index mengembalikan posisi kolom, atau -1 bila kolom tidak ada.
func (t Table) Index(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

func (t Table) Has(col string) bool {
	return t.Index(col) >= 0
}

// Cell aman dipanggil untuk kolom yang tidak ada (hasilnya Null).
func (t Table) Cell(row int, col string) Value {
	i := t.Index(col)
	if i < 0 || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return Null
	}
	return t.Rows[row][i]
}

// Column mengambil seluruh nilai satu kolom; nil bila kolom tidak ada.
func (t Table) Column(col string) []Value {
	i := t.Index(col)
	if i < 0 {
		return nil
	}
	out := make([]Value, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

func (t Table) Clone() Table {
	cols := append([]string(nil), t.Columns...)
	rows := make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]Value(nil), row...)
	}
	return Table{Columns: cols, Rows: rows}
}

// Filter menyimpan baris yang lolos predikat dengan urutan asli.
func (t Table) Filter(keep func(row int) bool) Table {
	out := Table{Columns: append([]string(nil), t.Columns...), Rows: make([][]Value, 0, len(t.Rows))}
	for i, row := range t.Rows {
		if keep(i) {
			out.Rows = append(out.Rows, append([]Value(nil), row...))
		}
	}
	return out
}

// WithColumn menambah kolom baru, atau mengganti isi kolom yang sudah ada.
// len(values) harus sama dengan jumlah baris.
func (t Table) WithColumn(name string, values []Value) Table {
	out := t.Clone()
	i := out.Index(name)
	if i < 0 {
		out.Columns = append(out.Columns, name)
		for r := range out.Rows {
			out.Rows[r] = append(out.Rows[r], values[r])
		}
		return out
	}
	for r := range out.Rows {
		out.Rows[r][i] = values[r]
	}
	return out
}

// Select mengambil kolom sesuai urutan cols. Nama yang tidak ada dilewati.
func (t Table) Select(cols ...string) Table {
	var idx []int
	out := Table{}
	for _, c := range cols {
		i := t.Index(c)
		if i < 0 {
			continue
		}
		idx = append(idx, i)
		out.Columns = append(out.Columns, c)
	}
	out.Rows = make([][]Value, len(t.Rows))
	for r, row := range t.Rows {
		nr := make([]Value, len(idx))
		for j, i := range idx {
			if i < len(row) {
				nr[j] = row[i]
			}
		}
		out.Rows[r] = nr
	}
	return out
}

func (t Table) DropColumns(names ...string) Table {
	if len(names) == 0 {
		return t.Clone()
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	keep := make([]int, 0, len(t.Columns))
	out := Table{}
	for i, c := range t.Columns {
		if !drop[c] {
			keep = append(keep, i)
			out.Columns = append(out.Columns, c)
		}
	}
	out.Rows = make([][]Value, len(t.Rows))
	for r, row := range t.Rows {
		nr := make([]Value, len(keep))
		for j, i := range keep {
			if i < len(row) {
				nr[j] = row[i]
			}
		}
		out.Rows[r] = nr
	}
	return out
}

// Equal membandingkan kolom dan isi sel.
func (t Table) Equal(o Table) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != o.Columns[i] {
			return false
		}
	}
	for r := range t.Rows {
		if len(t.Rows[r]) != len(o.Rows[r]) {
			return false
		}
		for c := range t.Rows[r] {
			if !t.Rows[r][c].Equal(o.Rows[r][c]) {
				return false
			}
		}
	}
	return true
}
