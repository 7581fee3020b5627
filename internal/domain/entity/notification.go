package entity

import "time"

// Notification notifikasi in-app untuk seorang user, misalnya saat stok
// ditransfer ke sales dari gudang.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}
