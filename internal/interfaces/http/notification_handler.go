package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/notification"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
)

// NotificationHandler menangani notifikasi in-app milik user yang login.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler membangun handler notifikasi.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Daftar notifikasi
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread_only  query  bool  false  "hanya yang belum dibaca"
// @Param        limit        query  int   false  "maksimum baris (default 20)"
// @Param        offset       query  int   false  "offset halaman"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), GetUserID(c), c.QueryBool("unread_only"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Tandai notifikasi terbaca
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID notifikasi"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	err := h.uc.MarkRead(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notifikasi tidak ditemukan atau sudah terbaca"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
