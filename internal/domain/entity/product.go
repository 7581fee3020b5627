package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product barang yang dijual sales di lapangan.
// Produk yang sudah punya stok atau mutasi tidak dihapus keras; IsActive
// dimatikan agar referensi histori tetap utuh.
type Product struct {
	ID        string
	Name      string
	SKU       string // unik
	Category  string
	Price     decimal.Decimal // harga jual default per unit
	FilePath  string          // foto produk (path saja, penyimpanan di luar sistem)
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
