package model

// Kosakata kolom kanonik tabel karyawan.
const (
	KolomStatusKepegawaian  = "Status Kepegawaian"
	KolomStatusAktif        = "Status Aktif"
	KolomJenisKelamin       = "Jenis Kelamin"
	KolomJenis              = "Jenis"
	KolomSubUnitKerja       = "Sub Unit Kerja"
	KolomUnitKerja          = "Unit Kerja"
	KolomLokasiKerja        = "Lokasi Kerja"
	KolomKlasifikasiJabatan = "Klasifikasi Jabatan"
	KolomJabatan            = "Jabatan"
	KolomDepartmentName     = "Department Name"
	KolomKelasKapal         = "Kelas Kapal"
	KolomSegmen             = "Segmen"
	KolomBandLevel          = "Band Level"

	KolomTanggalMasuk         = "Tanggal Masuk"
	KolomTanggalKeluar        = "Tanggal Keluar"
	KolomTanggalLahir         = "Tanggal Lahir"
	KolomTanggalPensiun       = "Tanggal Pensiun"
	KolomTanggalRencanaResign = "Tanggal Rencana Resign"

	// Kolom turunan hasil analisis.
	KolomUsia        = "Usia"
	KolomSisaBulan   = "Sisa Bulan"
	KolomGenerasi    = "Generasi"
	KolomJenisKantor = "Jenis Kantor"
)

// Status kepegawaian kanonik.
const (
	StatusPKWTT      = "PKWTT"
	StatusPKWT       = "PKWT"
	StatusCuti       = "CUTI"
	StatusResign     = "RESIGN"
	StatusPensiun    = "PENSIUN"
	StatusTerminated = "TERMINATED"
)

const (
	Aktif      = "Aktif"
	TidakAktif = "Tidak Aktif"

	LakiLaki  = "Laki-laki"
	Perempuan = "Perempuan"
)

// DateColumns adalah kolom yang di-parse sebagai tanggal.
var DateColumns = []string{
	KolomTanggalMasuk,
	KolomTanggalKeluar,
	KolomTanggalLahir,
	KolomTanggalPensiun,
	KolomTanggalRencanaResign,
}

// FilterColumns adalah kolom kategori yang tampil sebagai filter dashboard,
// dalam urutan tampilnya (organisasi & status, posisi & lokasi, detail internal).
var FilterColumns = []string{
	KolomStatusAktif,
	KolomStatusKepegawaian,
	KolomUnitKerja,
	KolomKlasifikasiJabatan,
	KolomJabatan,
	KolomLokasiKerja,
	KolomSubUnitKerja,
	KolomJenis,
	KolomDepartmentName,
}

func IsDateColumn(col string) bool {
	for _, c := range DateColumns {
		if c == col {
			return true
		}
	}
	return false
}
