package repository

import (
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// AttendanceRepository port persistensi untuk absensi harian.
type AttendanceRepository interface {
	Create(attendance *entity.Attendance) error
	// GetByUserAndDate mengambil absensi user pada tanggal tertentu (jam
	// dinolkan); nil jika belum ada.
	GetByUserAndDate(userID string, date time.Time) (*entity.Attendance, error)
	Update(attendance *entity.Attendance) error
	ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.Attendance, error)
}
