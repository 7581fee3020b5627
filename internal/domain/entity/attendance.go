package entity

import "time"

// Attendance catatan absensi harian: satu baris per user per tanggal.
// Check-out mengisi baris yang sama; kunjungan hanya boleh dilaporkan selama
// ada absensi yang masih terbuka (belum check-out).
type Attendance struct {
	ID          string
	UserID      string
	Date        time.Time // tanggal lokal, jam dinolkan
	CheckInAt   time.Time
	CheckInLat  float64
	CheckInLng  float64
	PhotoPath   string
	CheckOutAt  *time.Time
	CheckOutLat *float64
	CheckOutLng *float64
}

// Open true selama belum check-out.
func (a *Attendance) Open() bool {
	return a.CheckOutAt == nil
}
