package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

func canonical() model.Table {
	masuk := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	return model.NewTable(
		[]string{model.KolomStatusKepegawaian, "Nama", model.KolomTanggalMasuk, model.KolomTanggalKeluar},
		[][]model.Value{
			{model.Text("PKWT"), model.Text("Andi, S.T."), model.Date(masuk), model.Null},
			{model.Text("RESIGN"), model.Text(`Budi "B"`), model.Null, model.Date(masuk.AddDate(3, 1, 14))},
		},
	)
}

func TestCSV_Golden(t *testing.T) {
	want := "Status Kepegawaian,Nama,Tanggal Masuk,Tanggal Keluar\n" +
		"PKWT,\"Andi, S.T.\",2020-01-01,\n" +
		"RESIGN,\"Budi \"\"B\"\"\",,2023-02-15\n"

	assert.Equal(t, want, string(CSV(canonical())))
}

func TestCSV_Deterministic(t *testing.T) {
	assert.True(t, bytes.Equal(CSV(canonical()), CSV(canonical())))
}

func TestParseCSV_RoundTrip(t *testing.T) {
	src := canonical()

	got, err := ParseCSV(CSV(src))

	require.NoError(t, err)
	assert.True(t, src.Equal(got), cmp.Diff(src, got))
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, model.NewTable([]string{"A", "B"}, nil)))
	assert.Equal(t, "A,B\n", buf.String())
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

	assert.Equal(t, "data_karyawan_20240305_070809.csv", FileName("data_karyawan", now))
}
