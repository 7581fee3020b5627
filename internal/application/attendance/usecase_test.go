package attendance_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/attendance"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
)

// Gudang di Karanganyar; titik dekat ±70 m, titik jauh ±2 km.
const (
	whLat = -7.5977
	whLng = 110.9500

	nearLat = -7.5983
	nearLng = 110.9502

	farLat = -7.6150
	farLng = 110.9600

	radiusM = 200
)

const (
	salesID = "sales-1"
	adminID = "admin-1"
	whID    = "wh-1"
)

type fakeAttendanceRepo struct {
	rows []*entity.Attendance
}

func (r *fakeAttendanceRepo) Create(a *entity.Attendance) error {
	cp := *a
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeAttendanceRepo) GetByUserAndDate(userID string, date time.Time) (*entity.Attendance, error) {
	for _, a := range r.rows {
		if a.UserID == userID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(a *entity.Attendance) error {
	for i, row := range r.rows {
		if row.ID == a.ID {
			cp := *a
			r.rows[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("absensi %s tidak ada", a.ID)
}

func (r *fakeAttendanceRepo) ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.Attendance, error) {
	var out []*entity.Attendance
	for _, a := range r.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) List(role string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SetActive(id string, active bool) error { return nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error                 { return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) SetActive(id string, active bool) error { return nil }
func (r *fakeWarehouseRepo) HasRelations(id string) (bool, error)   { return false, nil }
func (r *fakeWarehouseRepo) Delete(id string) error                 { return nil }

func newAttendanceFixture() (*attendance.UseCase, *fakeAttendanceRepo) {
	wh := whID
	repo := &fakeAttendanceRepo{}
	users := &fakeUserRepo{users: map[string]*entity.User{
		salesID: {ID: salesID, Role: entity.RoleSales, WarehouseID: &wh, IsActive: true},
		adminID: {ID: adminID, Role: entity.RoleAdmin, IsActive: true},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		whID: {ID: whID, Latitude: whLat, Longitude: whLng, IsActive: true},
	}}
	return attendance.NewUseCase(repo, users, warehouses, radiusM), repo
}

func TestCheckIn_DalamRadiusDiterima(t *testing.T) {
	uc, repo := newAttendanceFixture()
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)

	resp, err := uc.CheckIn(context.Background(), salesID, dto.CheckInRequest{
		Latitude: nearLat, Longitude: nearLng, PhotoPath: "uploads/selfie.jpg",
	}, now)
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, repo.rows, 1)
	att := repo.rows[0]
	assert.Equal(t, salesID, att.UserID)
	assert.True(t, att.Date.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)),
		"kolom tanggal harus jam dinolkan")
	assert.Nil(t, att.CheckOutAt, "absensi baru harus masih terbuka")
}

func TestCheckIn_LuarRadiusDitolak(t *testing.T) {
	uc, repo := newAttendanceFixture()

	_, err := uc.CheckIn(context.Background(), salesID, dto.CheckInRequest{
		Latitude: farLat, Longitude: farLng,
	}, time.Now())
	assert.ErrorIs(t, err, domain.ErrOutsideGeofence)
	assert.Empty(t, repo.rows)
}

func TestCheckIn_DuaKaliSehariDitolak(t *testing.T) {
	uc, _ := newAttendanceFixture()
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)
	in := dto.CheckInRequest{Latitude: nearLat, Longitude: nearLng}

	_, err := uc.CheckIn(context.Background(), salesID, in, now)
	require.NoError(t, err)

	_, err = uc.CheckIn(context.Background(), salesID, in, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

// Admin kantor tanpa gudang asal tidak kena cek jarak.
func TestCheckIn_AdminTanpaGudangLolosGeofence(t *testing.T) {
	uc, _ := newAttendanceFixture()

	_, err := uc.CheckIn(context.Background(), adminID, dto.CheckInRequest{
		Latitude: farLat, Longitude: farLng,
	}, time.Now())
	assert.NoError(t, err)
}

func TestCheckIn_KoordinatKosongDitolak(t *testing.T) {
	uc, _ := newAttendanceFixture()

	_, err := uc.CheckIn(context.Background(), salesID, dto.CheckInRequest{}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckOut_MengisiBarisYangSama(t *testing.T) {
	uc, repo := newAttendanceFixture()
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)

	_, err := uc.CheckIn(context.Background(), salesID, dto.CheckInRequest{
		Latitude: nearLat, Longitude: nearLng,
	}, now)
	require.NoError(t, err)

	later := now.Add(9 * time.Hour)
	resp, err := uc.CheckOut(context.Background(), salesID, dto.CheckOutRequest{
		Latitude: nearLat, Longitude: nearLng,
	}, later)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutAt)

	require.Len(t, repo.rows, 1, "check-out tidak boleh membuat baris baru")
	require.NotNil(t, repo.rows[0].CheckOutAt)
	assert.True(t, repo.rows[0].CheckOutAt.Equal(later))
}

func TestCheckOut_TanpaCheckInDitolak(t *testing.T) {
	uc, _ := newAttendanceFixture()

	_, err := uc.CheckOut(context.Background(), salesID, dto.CheckOutRequest{
		Latitude: nearLat, Longitude: nearLng,
	}, time.Now())
	assert.ErrorIs(t, err, domain.ErrNoOpenAttendance)
}

func TestCheckOut_DuaKaliDitolak(t *testing.T) {
	uc, _ := newAttendanceFixture()
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)

	_, err := uc.CheckIn(context.Background(), salesID, dto.CheckInRequest{
		Latitude: nearLat, Longitude: nearLng,
	}, now)
	require.NoError(t, err)

	out := dto.CheckOutRequest{Latitude: nearLat, Longitude: nearLng}
	_, err = uc.CheckOut(context.Background(), salesID, out, now.Add(8*time.Hour))
	require.NoError(t, err)

	_, err = uc.CheckOut(context.Background(), salesID, out, now.Add(9*time.Hour))
	assert.ErrorIs(t, err, domain.ErrNoOpenAttendance)
}

func TestToday_TanpaAbsensiKembaliNil(t *testing.T) {
	uc, _ := newAttendanceFixture()

	resp, err := uc.Today(context.Background(), salesID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, resp)
}
