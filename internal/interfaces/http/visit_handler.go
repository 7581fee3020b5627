package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/visit"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
)

// VisitHandler menangani pelaporan dan riwayat kunjungan sales.
type VisitHandler struct {
	submit *visit.SubmitUseCase
	query  *visit.QueryUseCase
	stockQ *stock.QueryUseCase
}

// NewVisitHandler membangun handler kunjungan.
func NewVisitHandler(submit *visit.SubmitUseCase, query *visit.QueryUseCase, stockQ *stock.QueryUseCase) *VisitHandler {
	return &VisitHandler{submit: submit, query: query, stockQ: stockQ}
}

// Submit godoc
// @Summary      Laporkan kunjungan
// @Description  Mencatat kunjungan beserta baris produknya dalam satu
//               transaksi. Kunjungan pengiriman juga memutasi stok bawaan
//               sales: terjual mengurangi, retur menambah.
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitVisitRequest  true  "activity_type, customer_id atau new_customer, koordinat, products"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	out, err := h.submit.Submit(c.Context(), GetUserID(c), in, time.Now())
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
		}
		if errors.Is(err, domain.ErrNoOpenAttendance) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_OPEN_ATTENDANCE", Message: "belum check-in atau sudah check-out hari ini"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data kunjungan tidak valid"})
		}
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pelanggan atau produk tidak ditemukan"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "akun tidak boleh melaporkan kunjungan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Detail kunjungan
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID kunjungan"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [get]
func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kunjungan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Mutasi stok yang ditulis sebuah kunjungan
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID kunjungan"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/visits/{id}/movements [get]
func (h *VisitHandler) Movements(c *fiber.Ctx) error {
	out, err := h.stockQ.MovementsByVisit(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Riwayat kunjungan sales yang sedang login
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "tanggal awal (YYYY-MM-DD)"
// @Param        to      query  string  false  "tanggal akhir eksklusif (YYYY-MM-DD)"
// @Param        limit   query  int     false  "maksimum baris (default 20)"
// @Param        offset  query  int     false  "offset halaman"
// @Success      200  {array}  dto.VisitResponse
// @Router       /api/visits/mine [get]
func (h *VisitHandler) ListMine(c *fiber.Ctx) error {
	from, to, page, err := parseHistoryQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.query.ListByUser(c.Context(), GetUserID(c), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Riwayat kunjungan seorang sales (admin/supervisor)
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID sales"
// @Param        from    query  string  false  "tanggal awal (YYYY-MM-DD)"
// @Param        to      query  string  false  "tanggal akhir eksklusif (YYYY-MM-DD)"
// @Param        limit   query  int     false  "maksimum baris (default 20)"
// @Param        offset  query  int     false  "offset halaman"
// @Success      200  {array}  dto.VisitResponse
// @Router       /api/visits/user/{id} [get]
func (h *VisitHandler) ListByUser(c *fiber.Ctx) error {
	from, to, page, err := parseHistoryQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.query.ListByUser(c.Context(), c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
