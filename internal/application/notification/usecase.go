package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// UseCase notifikasi in-app. Pembuatan notifikasi bersifat best effort:
// kegagalan dicatat di log, tidak pernah menggagalkan operasi pemicunya.
type UseCase struct {
	repo repository.NotificationRepository
	log  zerolog.Logger
}

// NewUseCase membangun use case notifikasi.
func NewUseCase(repo repository.NotificationRepository, log zerolog.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// StockAssigned memberi tahu sales bahwa stok dialihkan kepadanya dari gudang.
// Memenuhi stock.Notifier.
func (uc *UseCase) StockAssigned(ctx context.Context, userID, productName string, quantity int64) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     "Stok masuk",
		Body:      fmt.Sprintf("%d unit %s dialihkan ke stok bawaan Anda", quantity, productName),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("gagal membuat notifikasi stok masuk")
	}
}

// List daftar notifikasi seorang user.
func (uc *UseCase) List(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return items, nil
}

// MarkRead menandai satu notifikasi milik user sebagai terbaca.
func (uc *UseCase) MarkRead(ctx context.Context, id, userID string) error {
	return uc.repo.MarkRead(id, userID, time.Now())
}
