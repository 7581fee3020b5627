package stock

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// QueryUseCase sisi baca ledger: daftar stok gudang, stok bawaan sales, dan
// histori mutasi. Pembacaan di luar transaksi dan bisa basi; tidak boleh
// dipakai sebagai dasar keputusan mutasi.
type QueryUseCase struct {
	warehouseStockRepo repository.ProductStockRepository
	salesStockRepo     repository.SalesStockRepository
	movementRepo       repository.StockMovementRepository
}

// NewQueryUseCase membangun use case kueri stok.
func NewQueryUseCase(
	warehouseStockRepo repository.ProductStockRepository,
	salesStockRepo repository.SalesStockRepository,
	movementRepo repository.StockMovementRepository,
) *QueryUseCase {
	return &QueryUseCase{
		warehouseStockRepo: warehouseStockRepo,
		salesStockRepo:     salesStockRepo,
		movementRepo:       movementRepo,
	}
}

// WarehouseStock daftar stok per produk di sebuah gudang.
func (uc *QueryUseCase) WarehouseStock(warehouseID string, limit, offset int) ([]dto.ProductStockResponse, error) {
	list, err := uc.warehouseStockRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductStockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ProductStockResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			WarehouseID: s.WarehouseID,
			Quantity:    s.Quantity,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return items, nil
}

// SalesStock daftar stok yang sedang dibawa seorang sales.
func (uc *QueryUseCase) SalesStock(userID string) ([]dto.SalesStockResponse, error) {
	list, err := uc.salesStockRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesStockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SalesStockResponse{
			ID:        s.ID,
			UserID:    s.UserID,
			ProductID: s.ProductID,
			Quantity:  s.Quantity,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return items, nil
}

// MovementsByProduct histori mutasi sebuah produk dalam rentang tanggal.
func (uc *QueryUseCase) MovementsByProduct(productID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.ToStockMovementResponses(list), nil
}

// MovementsByWarehouse histori mutasi sebuah gudang dalam rentang tanggal.
func (uc *QueryUseCase) MovementsByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementResponse, error) {
	list, err := uc.movementRepo.ListByWarehouse(warehouseID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.ToStockMovementResponses(list), nil
}

// MovementsByVisit mutasi stok yang ditulis oleh satu kunjungan pengiriman.
func (uc *QueryUseCase) MovementsByVisit(salesVisitID string) ([]dto.StockMovementResponse, error) {
	list, err := uc.movementRepo.ListByVisit(salesVisitID)
	if err != nil {
		return nil, err
	}
	return dto.ToStockMovementResponses(list), nil
}
