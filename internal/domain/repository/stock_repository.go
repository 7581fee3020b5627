package repository

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// ProductStockRepository port untuk stok gudang per (product, warehouse).
// Mutasi kuantitas hanya boleh lewat baris yang sedang dikunci.
type ProductStockRepository interface {
	Get(productID, warehouseID string) (*entity.ProductStock, error)
	// GetOrCreateForUpdate membuat baris dengan kuantitas 0 jika belum ada,
	// lalu mengambilnya dengan SELECT ... FOR UPDATE. Kunci dilepas saat
	// transaksi commit atau rollback.
	GetOrCreateForUpdate(productID, warehouseID string) (*entity.ProductStock, error)
	SetQuantity(id string, quantity int64, at time.Time) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.ProductStock, error)
}

// SalesStockRepository port untuk stok bawaan sales per (user, product).
type SalesStockRepository interface {
	Get(userID, productID string) (*entity.SalesProductStock, error)
	// GetOrCreateForUpdate seperti pada ProductStockRepository, untuk baris
	// stok bawaan sales.
	GetOrCreateForUpdate(userID, productID string) (*entity.SalesProductStock, error)
	SetQuantity(id string, quantity int64, at time.Time) error
	ListByUser(userID string) ([]*entity.SalesProductStock, error)
}
