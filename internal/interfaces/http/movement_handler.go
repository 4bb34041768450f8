package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/ledger"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementHandler maneja entradas, salidas y consultas del histórico (protegido).
type MovementHandler struct {
	ledgerUC *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledgerUC *ledger.UseCase) *MovementHandler {
	return &MovementHandler{ledgerUC: ledgerUC}
}

// Entry godoc
// @Summary      Registrar entrada de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del item"
// @Param        body  body  dto.MovementRequest  true  "Cantidad y nota opcional"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{code}/entries [post]
func (h *MovementHandler) Entry(c *fiber.Ctx) error {
	return h.applyMovement(c, h.ledgerUC.Receive)
}

// Exit godoc
// @Summary      Registrar salida de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del item"
// @Param        body  body  dto.MovementRequest  true  "Cantidad y nota opcional"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{code}/exits [post]
func (h *MovementHandler) Exit(c *fiber.Ctx) error {
	return h.applyMovement(c, h.ledgerUC.Issue)
}

func (h *MovementHandler) applyMovement(
	c *fiber.Ctx,
	apply func(ctx context.Context, code string, quantity int64, note, username string) error,
) error {
	code := c.Params("code")
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := apply(c.UserContext(), code, in.Quantity, in.Note, GetUsername(c)); err != nil {
		return respondError(c, err)
	}
	item, err := h.ledgerUC.Get(c.UserContext(), code)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.JSON(report.ItemToResponse(*item))
}

// History godoc
// @Summary      Histórico de movimientos (global o por item)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        code    query  string  false  "Filtrar por código de item"
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	movements, err := h.ledgerUC.History(c.UserContext(), c.Query("code"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movementList(movements))
}

// HistoryByItem godoc
// @Summary      Histórico de un item
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        code    path   string  true   "Código del item"
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/items/{code}/movements [get]
func (h *MovementHandler) HistoryByItem(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	movements, err := h.ledgerUC.History(c.UserContext(), c.Params("code"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movementList(movements))
}

func movementList(movements []entity.Movement) dto.MovementListResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:       m.ID,
			ItemCode: m.ItemCode,
			ItemName: m.ItemName,
			Type:     m.Type,
			Detail:   m.Detail,
			Quantity: m.Quantity,
			Date:     m.Date,
			Username: m.Username,
		})
	}
	return dto.MovementListResponse{Total: len(out), Movements: out}
}
