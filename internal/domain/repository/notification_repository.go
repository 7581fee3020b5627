package repository

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// NotificationRepository port persistensi untuk notifikasi in-app.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string, at time.Time) error
}
