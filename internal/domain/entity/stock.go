package entity

import "time"

// ProductStock jumlah stok sebuah produk di sebuah gudang.
// Satu baris per pasangan (product, warehouse); dibuat lazy dengan kuantitas 0
// saat mutasi pertama. Kuantitas tidak pernah negatif.
type ProductStock struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}

// SalesProductStock jumlah stok yang sedang dibawa seorang sales di lapangan.
// Satu baris per pasangan (user, product). Bertambah saat transfer "out" dari
// gudang atau retur pelanggan, berkurang saat terjual di kunjungan pengiriman.
type SalesProductStock struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}
