package entity

import "time"

// Warehouse gudang fisik tempat stok pusat disimpan.
// Gudang yang masih punya stok, mutasi, atau sales terkait tidak boleh
// dihapus; statusnya dinonaktifkan.
type Warehouse struct {
	ID        string
	Name      string
	Code      string // unik
	FilePath  string
	Latitude  float64 // titik pusat geofence absensi
	Longitude float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
