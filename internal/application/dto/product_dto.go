package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest masukan pembuatan produk.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	FilePath string          `json:"file_path"`
}

// UpdateProductRequest masukan perubahan produk; field nil tidak diubah.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	FilePath *string          `json:"file_path"`
	IsActive *bool            `json:"is_active"`
}

// ProductResponse keluaran satu produk.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	FilePath  string          `json:"file_path,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse daftar produk dengan metadata halaman.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
