package entity

import "time"

// Arah mutasi stok.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// StockMovement catatan audit append-only untuk setiap perubahan kuantitas.
// Tidak pernah di-update atau dihapus setelah dibuat. Satu baris per perubahan
// atomik: transfer gudang→sales menghasilkan tepat satu baris (sisi gudang),
// satu baris produk pada kunjungan pengiriman menghasilkan tepat satu baris.
type StockMovement struct {
	ID           string
	ProductID    string
	WarehouseID  string
	SalesVisitID *string // terisi untuk mutasi yang dipicu kunjungan
	UserID       *string // sales penerima pada transfer gudang→sales
	Type         string  // in | out
	Quantity     int64   // selalu positif; arah ada di Type
	Reference    string
	Note         string
	CreatedBy    *string // admin pelaku pada penyesuaian manual
	CreatedAt    time.Time
}
