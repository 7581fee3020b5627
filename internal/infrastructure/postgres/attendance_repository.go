package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementasi AttendanceRepository di PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

const attendanceColumns = `id, user_id, date, check_in_at, check_in_lat, check_in_lng, file_path, check_out_at, check_out_lat, check_out_lng`

// Create menyimpan absensi check-in baru. Constraint unik (user_id, date)
// menjaga satu baris per user per tanggal.
func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	query := `
		INSERT INTO attendances (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.Date, a.CheckInAt, a.CheckInLat, a.CheckInLng,
		a.PhotoPath, a.CheckOutAt, a.CheckOutLat, a.CheckOutLng,
	)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetByUserAndDate absensi user pada satu tanggal; nil jika belum ada.
func (r *AttendanceRepo) GetByUserAndDate(userID string, date time.Time) (*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 AND date = $2`
	var a entity.Attendance
	err := r.q.QueryRow(context.Background(), query, userID, date).Scan(
		&a.ID, &a.UserID, &a.Date, &a.CheckInAt, &a.CheckInLat, &a.CheckInLng,
		&a.PhotoPath, &a.CheckOutAt, &a.CheckOutLat, &a.CheckOutLng,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &a, nil
}

// Update menulis data check-out ke baris absensi yang sama.
func (r *AttendanceRepo) Update(a *entity.Attendance) error {
	query := `
		UPDATE attendances
		SET check_out_at = $2, check_out_lat = $3, check_out_lng = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CheckOutAt, a.CheckOutLat, a.CheckOutLng,
	)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// ListByUser riwayat absensi seorang user, terbaru lebih dulu.
func (r *AttendanceRepo) ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1`
	args := []any{userID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND date < $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		var a entity.Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.CheckInAt, &a.CheckInLat, &a.CheckInLng,
			&a.PhotoPath, &a.CheckOutAt, &a.CheckOutLat, &a.CheckOutLng); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
