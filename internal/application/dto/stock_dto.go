package dto

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// AdjustStockRequest masukan penyesuaian stok gudang oleh admin.
type AdjustStockRequest struct {
	ProductID    string `json:"product_id"`
	WarehouseID  string `json:"warehouse_id"`
	Type         string `json:"type"`           // in | out
	TargetUserID string `json:"target_user_id"` // wajib saat type = out
	Quantity     int64  `json:"quantity"`
	Reference    string `json:"reference"`
	Note         string `json:"note"`
}

// ProductStockResponse satu baris stok gudang.
type ProductStockResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SalesStockResponse satu baris stok bawaan sales.
type SalesStockResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockMovementResponse satu baris mutasi stok.
type StockMovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	WarehouseID  string    `json:"warehouse_id"`
	SalesVisitID *string   `json:"sales_visit_id,omitempty"`
	UserID       *string   `json:"user_id,omitempty"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	Reference    string    `json:"reference"`
	Note         string    `json:"note"`
	CreatedBy    *string   `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToStockMovementResponses memetakan entitas mutasi ke respons.
func ToStockMovementResponses(list []*entity.StockMovement) []StockMovementResponse {
	items := make([]StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, StockMovementResponse{
			ID:           m.ID,
			ProductID:    m.ProductID,
			WarehouseID:  m.WarehouseID,
			SalesVisitID: m.SalesVisitID,
			UserID:       m.UserID,
			Type:         m.Type,
			Quantity:     m.Quantity,
			Reference:    m.Reference,
			Note:         m.Note,
			CreatedBy:    m.CreatedBy,
			CreatedAt:    m.CreatedAt,
		})
	}
	return items
}
