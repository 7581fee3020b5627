package dto

import "time"

// CreateWarehouseRequest masukan pembuatan gudang.
type CreateWarehouseRequest struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	FilePath  string  `json:"file_path"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateWarehouseRequest masukan perubahan gudang; field nil tidak diubah.
type UpdateWarehouseRequest struct {
	Name      *string  `json:"name"`
	FilePath  *string  `json:"file_path"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsActive  *bool    `json:"is_active"`
}

// WarehouseResponse keluaran satu gudang.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	FilePath  string    `json:"file_path,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse daftar gudang dengan metadata halaman.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
