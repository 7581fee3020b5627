package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/attendance"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
)

// AttendanceHandler menangani absensi harian bergeofence.
type AttendanceHandler struct {
	uc *attendance.UseCase
}

// NewAttendanceHandler membangun handler absensi.
func NewAttendanceHandler(uc *attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Check-in absensi
// @Description  Koordinat harus berada dalam radius geofence gudang asal user.
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckInRequest  true  "latitude, longitude, photo_path"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	out, err := h.uc.CheckIn(c.Context(), GetUserID(c), in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CHECKED_IN", Message: "sudah check-in hari ini"})
		}
		if errors.Is(err, domain.ErrOutsideGeofence) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "OUTSIDE_GEOFENCE", Message: "posisi di luar radius gudang"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "koordinat wajib diisi"})
		}
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "user atau gudang tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Check-out absensi
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckOutRequest  true  "latitude, longitude"
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var in dto.CheckOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	out, err := h.uc.CheckOut(c.Context(), GetUserID(c), in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNoOpenAttendance) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_OPEN_ATTENDANCE", Message: "belum check-in atau sudah check-out hari ini"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Absensi hari ini
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/today [get]
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.Context(), GetUserID(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "belum ada absensi hari ini"})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Riwayat absensi user yang sedang login
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "tanggal awal (YYYY-MM-DD)"
// @Param        to      query  string  false  "tanggal akhir eksklusif (YYYY-MM-DD)"
// @Param        limit   query  int     false  "maksimum baris (default 20)"
// @Param        offset  query  int     false  "offset halaman"
// @Success      200  {array}  dto.AttendanceResponse
// @Router       /api/attendance/history [get]
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	from, to, page, err := parseHistoryQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.History(c.Context(), GetUserID(c), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
