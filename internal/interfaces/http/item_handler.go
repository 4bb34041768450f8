package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/ledger"
	"github.com/jhoicas/estoque-api/internal/application/report"
)

// ItemHandler maneja las peticiones HTTP para items (protegido).
type ItemHandler struct {
	ledgerUC *ledger.UseCase
	reportUC *report.UseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(ledgerUC *ledger.UseCase, reportUC *report.UseCase) *ItemHandler {
	return &ItemHandler{ledgerUC: ledgerUC, reportUC: reportUC}
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledgerUC.Create(c.UserContext(), ledger.CreateInput{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		Minimum:     in.Minimum,
		Maximum:     in.Maximum,
		Location:    in.Location,
		Supplier:    in.Supplier,
		Price:       in.Price,
	}, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.ledgerUC.Get(c.UserContext(), in.Code)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.Status(fiber.StatusCreated).JSON(report.ItemToResponse(*item))
}

// List godoc
// @Summary      Listar items con filtros
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Código o nombre (substring)"
// @Param        supplier  query  string  false  "Proveedor exacto"
// @Param        location  query  string  false  "Localización exacta"
// @Param        status    query  string  false  "SIN_STOCK | BAJO_MINIMO | SOBRE_MAXIMO | NORMAL"
// @Success      200       {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var filter dto.ItemFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.reportUC.Items(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener item por código
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del item"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{code} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	code := c.Params("code")
	item, err := h.ledgerUC.Get(c.UserContext(), code)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.JSON(report.ItemToResponse(*item))
}

// Update godoc
// @Summary      Actualizar campos de un item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del item"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{code} [patch]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledgerUC.Update(c.UserContext(), code, in, GetUsername(c)); err != nil {
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

// Delete godoc
// @Summary      Excluir item (purga su histórico)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del item"
// @Success      204   "Sin contenido"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{code} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.ledgerUC.Delete(c.UserContext(), code, GetUsername(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
