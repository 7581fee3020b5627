package repository

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// SalesVisitRepository port persistensi untuk kunjungan sales dan baris
// produknya.
type SalesVisitRepository interface {
	Create(visit *entity.SalesVisit) error
	AttachProduct(line *entity.VisitProduct) error
	GetByID(id string) (*entity.SalesVisit, error)
	ListProducts(salesVisitID string) ([]*entity.VisitProduct, error)
	ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.SalesVisit, error)
}
