package entity

import "time"

// Role yang dikenal sistem, diurutkan berdasarkan jenjang.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleSales      = "sales"
)

// RoleRank jenjang numerik role; dipakai untuk validasi hirarki supervisor.
// Supervisor harus punya jenjang lebih tinggi dari bawahannya.
func RoleRank(role string) int {
	switch role {
	case RoleAdmin:
		return 3
	case RoleSupervisor:
		return 2
	case RoleSales:
		return 1
	default:
		return 0
	}
}

// User pengguna sistem: admin kantor, supervisor, atau sales lapangan.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, tidak pernah plaintext setelah persist
	Role         string // admin, supervisor, sales
	SupervisorID *string
	WarehouseID  *string // gudang asal sales; juga titik geofence absensi
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
