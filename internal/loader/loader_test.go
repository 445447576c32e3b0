package loader

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
)

func TestLoad_CSV(t *testing.T) {
	data := "\xEF\xBB\xBFNama;Status_Kepegawaian;Jenis\n" +
		"Andi;PKWT;Laut\n" +
		"Budi;;Darat;ekstra\n" +
		"Citra\n"

	tbl, err := Load("karyawan.CSV", strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, []string{"Nama", "Status_Kepegawaian", "Jenis"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())
	for _, row := range tbl.Rows {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, "PKWT", tbl.Cell(0, "Status_Kepegawaian").String())
	assert.True(t, tbl.Cell(1, "Status_Kepegawaian").IsNull())
	assert.True(t, tbl.Cell(2, "Jenis").IsNull())
}

func TestLoad_CSVHeaderNames(t *testing.T) {
	tbl, err := Load("a.csv", strings.NewReader("A,,A,A\n1,2,3,4\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Unnamed: 1", "A.1", "A.2"}, tbl.Columns)
}

func TestLoad_CSVQuotedAndTab(t *testing.T) {
	tbl, err := Load("a.csv", strings.NewReader("Nama\tJabatan\n\"Andi, S.T.\"\tManager\n"))

	require.NoError(t, err)
	assert.Equal(t, "Andi, S.T.", tbl.Cell(0, "Nama").String())
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Nama", "Tanggal_Masuk", "Jenis"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Andi", "2020-01-01", "Laut"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Budi"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := Load("data.xlsx", bytes.NewReader(buf.Bytes()))

	require.NoError(t, err)
	assert.Equal(t, []string{"Nama", "Tanggal_Masuk", "Jenis"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "2020-01-01", tbl.Cell(0, "Tanggal_Masuk").String())
	assert.True(t, tbl.Cell(1, "Jenis").IsNull())
	assert.Len(t, tbl.Rows[1], 3)
}

func TestLoad_XLSXDateAndNumberCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Tanggal_Masuk", "Tanggal_Lahir", "Band_Level", "Nama"}))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 43845))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", 5))
	require.NoError(t, f.SetCellValue("Sheet1", "D2", "Andi"))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "B2", style))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := Load("data.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	want := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	for _, col := range []string{"Tanggal_Masuk", "Tanggal_Lahir"} {
		raw := tbl.Cell(0, col).String()
		got, ok := pipeline.ParseDate(raw)
		if assert.True(t, ok, "%s: %q", col, raw) {
			assert.Equal(t, want, got, col)
		}
	}
	assert.Equal(t, "5", tbl.Cell(0, "Band_Level").String())
	assert.Equal(t, "Andi", tbl.Cell(0, "Nama").String())
}

func TestLoad_XLSCorrupt(t *testing.T) {
	// Tanda OLE2 benar tetapi header terpotong
	magic := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	cases := map[string][]byte{
		"magic saja":       magic,
		"header terpotong": append(append([]byte(nil), magic...), make([]byte, 100)...),
		"teks biasa":       []byte("Nama,Jenis\nAndi,Laut\n"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := Load("karyawan.xls", bytes.NewReader(data))
				assert.ErrorIs(t, err, ErrUnreadableSource)
			})
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	cases := map[string]string{
		"data.pdf":   "isi",
		"kosong.csv": "",
		"rusak.xlsx": "bukan zip",
		"rusak.xls":  "bukan xls",
		"spasi.csv":  " \n\n",
	}
	for name, body := range cases {
		_, err := Load(name, strings.NewReader(body))
		assert.ErrorIs(t, err, ErrUnreadableSource, name)
	}
}

func TestExportURL(t *testing.T) {
	got, err := ExportURL("https://docs.google.com/spreadsheets/d/abc_123-X/edit#gid=42")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc_123-X/export?format=csv&gid=42", got)

	got, err = ExportURL("https://docs.google.com/spreadsheets/d/abc/edit")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/export?format=csv", got)

	got, err = ExportURL("https://example.com/data.csv")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/data.csv", got)

	_, err = ExportURL("bukan url")
	assert.ErrorIs(t, err, ErrUnreadableSource)
}

func TestLoadRemote(t *testing.T) {
	var requested string
	get := func(url string) ([]byte, error) {
		requested = url
		return []byte("Nama,Jenis\nAndi,Laut\n"), nil
	}

	tbl, err := LoadRemote(get, "https://docs.google.com/spreadsheets/d/abc/edit?gid=7")

	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=7", requested)
	assert.Equal(t, model.Text("Laut"), tbl.Cell(0, "Jenis"))
}

func TestLoadRemote_FetchError(t *testing.T) {
	get := func(string) ([]byte, error) { return nil, errors.New("timeout") }

	_, err := LoadRemote(get, "https://example.com/a.csv")

	assert.ErrorIs(t, err, ErrUnreadableSource)
}
