package dto

import "time"

// LoginRequest masukan login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse keluaran login: token plus profil user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest masukan pembuatan user oleh admin.
type CreateUserRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"` // admin, supervisor, sales
	SupervisorID *string `json:"supervisor_id"`
	WarehouseID  *string `json:"warehouse_id"`
}

// UpdateUserRequest masukan perubahan user; field nil tidak diubah.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	SupervisorID *string `json:"supervisor_id"`
	WarehouseID  *string `json:"warehouse_id"`
	IsActive     *bool   `json:"is_active"`
}

// UserResponse keluaran satu user (tanpa hash password).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	SupervisorID *string   `json:"supervisor_id,omitempty"`
	WarehouseID  *string   `json:"warehouse_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserListResponse daftar user dengan metadata halaman.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
