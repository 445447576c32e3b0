package pipeline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

func TestRename_AppliesAliases(t *testing.T) {
	raw := table(
		[]string{"Status_Kepegawaian", "Sub_unker", "TglLahir", "Bulan", "Kolom Lain"},
		[]string{"PKWT", "Priok", "1990-01-01", "2020-01-01", "x"},
	)

	got := NewNormalizer().Rename(raw)

	assert.Equal(t, []string{
		model.KolomStatusKepegawaian,
		model.KolomSubUnitKerja,
		model.KolomTanggalLahir,
		model.KolomTanggalMasuk,
		"Kolom Lain",
	}, got.Columns)
	// tabel sumber tidak berubah
	assert.Equal(t, "Status_Kepegawaian", raw.Columns[0])
}

func TestRename_NeverProducesDuplicateColumns(t *testing.T) {
	raw := table(
		[]string{"Retirement_Date", "Retirement Date", "Tanggal Pensiun"},
		[]string{"2030-01-01", "2031-01-01", "2032-01-01"},
	)

	got := NewNormalizer().Rename(raw)

	seen := map[string]bool{}
	for _, c := range got.Columns {
		require.False(t, seen[c], "kolom ganda %q", c)
		seen[c] = true
	}
	assert.Equal(t, []string{"Retirement_Date", "Retirement Date", model.KolomTanggalPensiun}, got.Columns)
}

func TestRename_FirstVariantWins(t *testing.T) {
	raw := table([]string{"Retirement Date", "Retirement_Date"}, []string{"a", "b"})

	got := NewNormalizer().Rename(raw)

	assert.Equal(t, []string{"Retirement Date", model.KolomTanggalPensiun}, got.Columns)
	assert.Equal(t, "b", got.Cell(0, model.KolomTanggalPensiun).String())
}

func TestRename_ExtraAliases(t *testing.T) {
	raw := table([]string{"Emp_Status"}, []string{"PKWT"})

	got := NewNormalizer(Alias{From: "Emp_Status", To: model.KolomStatusKepegawaian}).Rename(raw)

	assert.Equal(t, []string{model.KolomStatusKepegawaian}, got.Columns)
}

func TestDropEmptyColumns(t *testing.T) {
	raw := table(
		[]string{"A", "Kosong", "Spasi", "B"},
		[]string{"1", "", "  ", ""},
		[]string{"2", "", "", "x"},
	)

	got, dropped := DropEmptyColumns(raw)

	assert.Equal(t, []string{"Kosong", "Spasi"}, dropped)
	assert.Equal(t, []string{"A", "B"}, got.Columns)
	assert.Equal(t, 2, got.Len())
}

func TestDropEmptyColumns_ZeroRows(t *testing.T) {
	raw := table([]string{"A", "B"})

	got, dropped := DropEmptyColumns(raw)

	assert.Empty(t, dropped)
	assert.Equal(t, []string{"A", "B"}, got.Columns)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := table(
		[]string{"Status_Kepegawaian", "Unit_Kerja", "Kosong", "Jenis_Kelamin"},
		[]string{"PKWT", "HO", "", "L"},
		[]string{"PKWTT", "", "", "P"},
	)
	n := NewNormalizer()

	once, _ := n.Normalize(raw)
	twice, dropped := n.Normalize(once)

	assert.Empty(t, dropped)
	assert.True(t, once.Equal(twice), cmp.Diff(once.Columns, twice.Columns))
}

func TestLoadAliases(t *testing.T) {
	doc := `
aliases:
  - from: Emp_Status
    to: Status Kepegawaian
  - from: " Gender "
    to: Jenis Kelamin
`
	got, err := LoadAliases(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Equal(t, []Alias{
		{From: "Emp_Status", To: model.KolomStatusKepegawaian},
		{From: "Gender", To: model.KolomJenisKelamin},
	}, got)
}

func TestLoadAliases_EmptyAndInvalid(t *testing.T) {
	got, err := LoadAliases(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = LoadAliases(strings.NewReader("aliases:\n  - from: X\n"))
	assert.Error(t, err)

	got, err = LoadAliasFile("")
	require.NoError(t, err)
	assert.Nil(t, got)
}
