package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewCustomerInput entri pelanggan manual saat kunjungan.
type NewCustomerInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// VisitProductInput satu baris produk pada laporan kunjungan.
// Action menerima terjual/retur atau sinonim sold/returned.
// Value opsional; jika kosong dihitung dari unit_price × quantity
// (unit_price kosong memakai harga produk).
type VisitProductInput struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	Action    string           `json:"action"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Value     *decimal.Decimal `json:"value"`
	Note      string           `json:"note"`
}

// SubmitVisitRequest masukan laporan kunjungan sales.
type SubmitVisitRequest struct {
	ActivityType string              `json:"activity_type"` // pengiriman, kanvasing, penagihan, lainnya
	CustomerID   string              `json:"customer_id"`   // kosong jika NewCustomer diisi
	NewCustomer  *NewCustomerInput   `json:"new_customer"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	PhotoPath    string              `json:"photo_path"`
	Note         string              `json:"note"`
	Products     []VisitProductInput `json:"products"`
}

// VisitProductResponse baris produk kunjungan setelah dinormalisasi.
type VisitProductResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Value     decimal.Decimal `json:"value"`
	Action    string          `json:"action"`
	Note      string          `json:"note,omitempty"`
}

// VisitResponse keluaran satu kunjungan.
type VisitResponse struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	CustomerID   string                 `json:"customer_id"`
	ActivityType string                 `json:"activity_type"`
	Latitude     float64                `json:"latitude"`
	Longitude    float64                `json:"longitude"`
	PhotoPath    string                 `json:"photo_path,omitempty"`
	Note         string                 `json:"note,omitempty"`
	VisitedAt    time.Time              `json:"visited_at"`
	Products     []VisitProductResponse `json:"products,omitempty"`
}
