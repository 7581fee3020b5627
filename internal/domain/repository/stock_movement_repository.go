package repository

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// StockMovementRepository port persistensi untuk mutasi stok.
// Hanya Create yang menulis; tabelnya append-only.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByVisit(salesVisitID string) ([]*entity.StockMovement, error)
}
