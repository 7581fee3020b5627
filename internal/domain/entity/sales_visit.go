package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Jenis aktivitas kunjungan. Hanya pengiriman yang menyentuh ledger stok;
// jenis lain hanya mencatat transaksi komersialnya.
const (
	ActivityPengiriman = "pengiriman"
	ActivityKanvasing  = "kanvasing"
	ActivityPenagihan  = "penagihan"
	ActivityLainnya    = "lainnya"
)

// SalesVisit laporan kunjungan lapangan seorang sales ke pelanggan.
type SalesVisit struct {
	ID           string
	UserID       string
	CustomerID   string
	ActivityType string
	Latitude     float64
	Longitude    float64
	PhotoPath    string
	Note         string
	VisitedAt    time.Time
	CreatedAt    time.Time
}

// VisitProduct baris produk yang menempel pada kunjungan (pivot).
// Value bertanda: negatif untuk retur, positif untuk terjual.
type VisitProduct struct {
	ID           string
	SalesVisitID string
	ProductID    string
	Quantity     int64
	UnitPrice    decimal.Decimal
	Value        decimal.Decimal
	Action       string // terjual | retur (sudah dinormalisasi)
	Note         string
}
