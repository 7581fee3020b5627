package dto

import "time"

// CheckInRequest masukan check-in absensi.
type CheckInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PhotoPath string  `json:"photo_path"`
}

// CheckOutRequest masukan check-out absensi.
type CheckOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AttendanceResponse keluaran satu catatan absensi.
type AttendanceResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Date        time.Time  `json:"date"`
	CheckInAt   time.Time  `json:"check_in_at"`
	CheckInLat  float64    `json:"check_in_lat"`
	CheckInLng  float64    `json:"check_in_lng"`
	PhotoPath   string     `json:"photo_path,omitempty"`
	CheckOutAt  *time.Time `json:"check_out_at,omitempty"`
	CheckOutLat *float64   `json:"check_out_lat,omitempty"`
	CheckOutLng *float64   `json:"check_out_lng,omitempty"`
}
