package entity

import "time"

// Customer pelanggan yang dikunjungi sales. Bisa dibuat manual saat kunjungan
// jika belum terdaftar.
type Customer struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Latitude  float64
	Longitude float64
	CreatedBy string // user yang mendaftarkan
	CreatedAt time.Time
	UpdatedAt time.Time
}
