package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
)

// StockHandler menangani penyesuaian stok gudang dan kueri ledger.
type StockHandler struct {
	transfer *stock.TransferUseCase
	query    *stock.QueryUseCase
}

// NewStockHandler membangun handler stok.
func NewStockHandler(transfer *stock.TransferUseCase, query *stock.QueryUseCase) *StockHandler {
	return &StockHandler{transfer: transfer, query: query}
}

// Adjust godoc
// @Summary      Sesuaikan stok gudang
// @Description  type=in menambah stok gudang; type=out memindahkan stok gudang
//               ke stok bawaan sales (target_user_id wajib). Setiap penyesuaian
//               menulis tepat satu baris mutasi.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, warehouse_id, type, quantity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stocks/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	err := h.transfer.Adjust(c.Context(), stock.AdjustInput{
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		Type:         in.Type,
		TargetUserID: in.TargetUserID,
		Quantity:     in.Quantity,
		Reference:    in.Reference,
		Note:         in.Note,
		ActorID:      GetUserID(c),
		Now:          time.Now(),
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
		}
		if errors.Is(err, domain.ErrMissingTargetUser) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TARGET", Message: "pilih sales penerima"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data penyesuaian tidak valid"})
		}
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produk, gudang, atau sales tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "penyesuaian stok tercatat"})
}

// WarehouseStock godoc
// @Summary      Stok per produk di sebuah gudang
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID gudang"
// @Param        limit   query  int     false  "maksimum baris (default 20)"
// @Param        offset  query  int     false  "offset halaman"
// @Success      200  {array}  dto.ProductStockResponse
// @Router       /api/stocks/warehouse/{id} [get]
func (h *StockHandler) WarehouseStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()
	out, err := h.query.WarehouseStock(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MyStock godoc
// @Summary      Stok bawaan sales yang sedang login
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesStockResponse
// @Router       /api/stocks/mine [get]
func (h *StockHandler) MyStock(c *fiber.Ctx) error {
	out, err := h.query.SalesStock(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesStock godoc
// @Summary      Stok bawaan seorang sales (admin/supervisor)
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID sales"
// @Success      200  {array}  dto.SalesStockResponse
// @Router       /api/stocks/sales/{id} [get]
func (h *StockHandler) SalesStock(c *fiber.Ctx) error {
	out, err := h.query.SalesStock(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MovementsByProduct godoc
// @Summary      Histori mutasi sebuah produk
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID produk"
// @Param        from    query  string  false  "tanggal awal (YYYY-MM-DD)"
// @Param        to      query  string  false  "tanggal akhir eksklusif (YYYY-MM-DD)"
// @Param        limit   query  int     false  "maksimum baris (default 20)"
// @Param        offset  query  int     false  "offset halaman"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/stocks/movements/product/{id} [get]
func (h *StockHandler) MovementsByProduct(c *fiber.Ctx) error {
	from, to, page, err := parseHistoryQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.query.MovementsByProduct(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MovementsByWarehouse godoc
// @Summary      Histori mutasi sebuah gudang
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID gudang"
// @Param        from    query  string  false  "tanggal awal (YYYY-MM-DD)"
// @Param        to      query  string  false  "tanggal akhir eksklusif (YYYY-MM-DD)"
// @Param        limit   query  int     false  "maksimum baris (default 20)"
// @Param        offset  query  int     false  "offset halaman"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/stocks/movements/warehouse/{id} [get]
func (h *StockHandler) MovementsByWarehouse(c *fiber.Ctx) error {
	from, to, page, err := parseHistoryQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.query.MovementsByWarehouse(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseHistoryQuery membaca rentang tanggal dan paginasi dari query string.
// from/to memakai format YYYY-MM-DD; to bersifat eksklusif.
func parseHistoryQuery(c *fiber.Ctx) (from, to *time.Time, page dto.PageRequest, err error) {
	if err = c.QueryParser(&page); err != nil {
		return nil, nil, page, fmt.Errorf("query tidak valid")
	}
	page.DefaultPage()
	if raw := c.Query("from"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, page, fmt.Errorf("format from harus YYYY-MM-DD")
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, page, fmt.Errorf("format to harus YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, page, nil
}
