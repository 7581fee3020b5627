package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/pkg/geo"
)

// UseCase absensi harian dengan geofence: check-in/out divalidasi terhadap
// titik gudang asal user dalam radius yang dikonfigurasi. Satu baris per user
// per tanggal.
type UseCase struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	warehouseRepo  repository.WarehouseRepository
	radiusM        float64
}

// NewUseCase membangun use case absensi.
func NewUseCase(
	attendanceRepo repository.AttendanceRepository,
	userRepo repository.UserRepository,
	warehouseRepo repository.WarehouseRepository,
	radiusM float64,
) *UseCase {
	return &UseCase{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		warehouseRepo:  warehouseRepo,
		radiusM:        radiusM,
	}
}

// CheckIn mencatat kehadiran user hari ini. Ditolak jika sudah ada absensi
// hari ini atau posisi di luar radius gudang asal.
func (uc *UseCase) CheckIn(ctx context.Context, userID string, in dto.CheckInRequest, now time.Time) (*dto.AttendanceResponse, error) {
	if in.Latitude == 0 && in.Longitude == 0 {
		return nil, fmt.Errorf("%w: koordinat wajib", domain.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserNotFound
	}

	if err := uc.checkGeofence(user, in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	existing, err := uc.attendanceRepo.GetByUserAndDate(userID, dateOnly(now))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	att := &entity.Attendance{
		ID:         uuid.New().String(),
		UserID:     userID,
		Date:       dateOnly(now),
		CheckInAt:  now,
		CheckInLat: in.Latitude,
		CheckInLng: in.Longitude,
		PhotoPath:  in.PhotoPath,
	}
	if err := uc.attendanceRepo.Create(att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

// CheckOut menutup absensi hari ini. Ditolak jika belum check-in atau sudah
// check-out.
func (uc *UseCase) CheckOut(ctx context.Context, userID string, in dto.CheckOutRequest, now time.Time) (*dto.AttendanceResponse, error) {
	att, err := uc.attendanceRepo.GetByUserAndDate(userID, dateOnly(now))
	if err != nil {
		return nil, err
	}
	if att == nil || !att.Open() {
		return nil, domain.ErrNoOpenAttendance
	}

	att.CheckOutAt = &now
	att.CheckOutLat = &in.Latitude
	att.CheckOutLng = &in.Longitude
	if err := uc.attendanceRepo.Update(att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

// Today mengambil absensi user hari ini; nil jika belum check-in.
func (uc *UseCase) Today(ctx context.Context, userID string, now time.Time) (*dto.AttendanceResponse, error) {
	att, err := uc.attendanceRepo.GetByUserAndDate(userID, dateOnly(now))
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, nil
	}
	return toResponse(att), nil
}

// History daftar absensi user dalam rentang tanggal.
func (uc *UseCase) History(ctx context.Context, userID string, from, to *time.Time, limit, offset int) ([]dto.AttendanceResponse, error) {
	list, err := uc.attendanceRepo.ListByUser(userID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toResponse(a))
	}
	return items, nil
}

// checkGeofence memvalidasi posisi terhadap titik gudang asal user.
// User tanpa gudang asal (admin kantor) lolos tanpa cek jarak.
func (uc *UseCase) checkGeofence(user *entity.User, lat, lng float64) error {
	if user.WarehouseID == nil {
		return nil
	}
	warehouse, err := uc.warehouseRepo.GetByID(*user.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if !geo.WithinRadius(warehouse.Latitude, warehouse.Longitude, lat, lng, uc.radiusM) {
		return domain.ErrOutsideGeofence
	}
	return nil
}

func toResponse(a *entity.Attendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.Date,
		CheckInAt:   a.CheckInAt,
		CheckInLat:  a.CheckInLat,
		CheckInLng:  a.CheckInLng,
		PhotoPath:   a.PhotoPath,
		CheckOutAt:  a.CheckOutAt,
		CheckOutLat: a.CheckOutLat,
		CheckOutLng: a.CheckOutLng,
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
