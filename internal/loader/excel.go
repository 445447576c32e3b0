package loader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// readXLSX membaca sheet pertama. Nilai sel dibaca mentah: sel tanggal
// menjadi nomor seri Excel, bukan teks hasil format tampilan.
func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("worksheet tidak ditemukan")
	}
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("worksheet kosong")
	}
	return rows, nil
}

// readXLS membaca sheet pertama dari workbook Excel 97-2003. Parser xls
// bisa panic pada file rusak; panic diubah menjadi error.
func readXLS(data []byte) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("file xls rusak: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, errors.New("worksheet tidak ditemukan")
	}
	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("worksheet tidak ditemukan")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// LastCol adalah indeks kolom terakhir + 1
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil, errors.New("worksheet kosong")
	}
	return rows, nil
}
