package model

import "time"

type SourceKind string

const (
	SourceUpload SourceKind = "upload"
	SourceRemote SourceKind = "remote"
)

// Dataset adalah satu tabel yang diunggah/diambil dalam satu sesi,
// beserta hasil kanoniknya. Canonical bersifat read-only setelah disimpan.
type Dataset struct {
	ID             string        `json:"id"`
	FileName       string        `json:"file_name"`
	Source         SourceKind    `json:"source"`
	UploadedAt     time.Time     `json:"uploaded_at"`
	ReferenceDate  time.Time     `json:"reference_date"`
	RawColumns     []string      `json:"raw_columns"`
	DroppedColumns []string      `json:"dropped_columns"`
	Missing        []MissingStat `json:"missing"`
	Rows           int           `json:"rows"`
	Raw            Table         `json:"-"`
	Canonical      Table         `json:"-"`
}

// MissingStat adalah jumlah sel kosong per kolom.
type MissingStat struct {
	Column     string  `json:"column"`
	Count      int     `json:"missing_count"`
	Percentage float64 `json:"missing_percentage"`
}
