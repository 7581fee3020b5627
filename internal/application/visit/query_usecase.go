package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// QueryUseCase sisi baca kunjungan: detail satu kunjungan beserta baris
// produknya, dan riwayat kunjungan seorang sales.
type QueryUseCase struct {
	visitRepo repository.SalesVisitRepository
}

// NewQueryUseCase membangun use case kueri kunjungan.
func NewQueryUseCase(visitRepo repository.SalesVisitRepository) *QueryUseCase {
	return &QueryUseCase{visitRepo: visitRepo}
}

// Get detail satu kunjungan beserta baris produknya.
func (uc *QueryUseCase) Get(ctx context.Context, id string) (*dto.VisitResponse, error) {
	v, err := uc.visitRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("ambil kunjungan: %w", err)
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.visitRepo.ListProducts(v.ID)
	if err != nil {
		return nil, fmt.Errorf("ambil produk kunjungan: %w", err)
	}
	resp := toVisitResponse(v)
	for _, line := range lines {
		resp.Products = append(resp.Products, dto.VisitProductResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Value:     line.Value,
			Action:    line.Action,
			Note:      line.Note,
		})
	}
	return resp, nil
}

// ListByUser riwayat kunjungan seorang sales tanpa baris produk.
func (uc *QueryUseCase) ListByUser(ctx context.Context, userID string, from, to *time.Time, limit, offset int) ([]dto.VisitResponse, error) {
	list, err := uc.visitRepo.ListByUser(userID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("daftar kunjungan: %w", err)
	}
	items := make([]dto.VisitResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVisitResponse(v))
	}
	return items, nil
}

func toVisitResponse(v *entity.SalesVisit) *dto.VisitResponse {
	return &dto.VisitResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		CustomerID:   v.CustomerID,
		ActivityType: v.ActivityType,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		PhotoPath:    v.PhotoPath,
		Note:         v.Note,
		VisitedAt:    v.VisitedAt,
	}
}
