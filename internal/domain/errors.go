package domain

import (
	"errors"
	"fmt"
)

// Error domain (tanpa dependensi eksternal).
var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrUserNotFound       = errors.New("user tidak ditemukan")
	ErrInvalidInput       = errors.New("input tidak valid")
	ErrDuplicate          = errors.New("data sudah ada")
	ErrUnauthorized       = errors.New("tidak terautentikasi")
	ErrForbidden          = errors.New("akses ditolak")
	ErrInsufficientStock  = errors.New("stok tidak mencukupi")
	ErrMissingTargetUser  = errors.New("pilih sales penerima")
	ErrWarehouseInUse     = errors.New("gudang masih memiliki stok, mutasi, atau sales terkait; nonaktifkan saja")
	ErrInvalidSupervisor  = errors.New("supervisor harus memiliki jenjang role lebih tinggi")
	ErrNoOpenAttendance   = errors.New("belum check-in hari ini")
	ErrAlreadyCheckedIn   = errors.New("sudah check-in hari ini")
	ErrOutsideGeofence    = errors.New("lokasi di luar radius yang diizinkan")
	ErrWrongPassword      = errors.New("password salah")
)

// InsufficientStockError membawa identitas produk yang stoknya kurang,
// supaya pesan ke user bisa menyebut produknya. errors.Is terhadap
// ErrInsufficientStock tetap berlaku lewat Unwrap.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("stok %s tidak mencukupi: diminta %d, tersedia %d", name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
