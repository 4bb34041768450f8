package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/ledger"
	"github.com/jhoicas/estoque-api/internal/application/report"
)

// ReportHandler sirve las vistas analíticas del tablero y las exportaciones.
type ReportHandler struct {
	reportUC *report.UseCase
	ledgerUC *ledger.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *report.UseCase, ledgerUC *ledger.UseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, ledgerUC: ledgerUC}
}

// Summary godoc
// @Summary      Resumen agregado del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reportUC.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas tempranas de stock (4 buckets)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Router       /api/reports/alerts [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.ledgerUC.Alerts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report.AlertsToResponse(alerts))
}

// ABC godoc
// @Summary      Curva ABC por valor de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ABCResponse
// @Router       /api/reports/abc [get]
func (h *ReportHandler) ABC(c *fiber.Ctx) error {
	out, err := h.reportUC.ABC(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Previsión de reposición (modelo lineal)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ForecastResponse
// @Router       /api/reports/replenishment [get]
func (h *ReportHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.reportUC.Forecast(c.UserContext(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Totales por proveedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GroupTotalDTO
// @Router       /api/reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.reportUC.Suppliers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Locations godoc
// @Summary      Totales por localización
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GroupTotalDTO
// @Router       /api/reports/locations [get]
func (h *ReportHandler) Locations(c *fiber.Ctx) error {
	out, err := h.reportUC.Locations(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar inventario como CSV (separador ';', BOM UTF-8)
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Param        search    query  string  false  "Código o nombre (substring)"
// @Param        supplier  query  string  false  "Proveedor exacto"
// @Param        location  query  string  false  "Localización exacta"
// @Param        status    query  string  false  "Status calculado"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/exports/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	var filter dto.ItemFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.reportUC.ExportCSV(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque_`+time.Now().Format("20060102_150405")+`.csv"`)
	return c.Send(out)
}

// ExportPDF godoc
// @Summary      Exportar informe de inventario en PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "documento PDF"
// @Router       /api/exports/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.reportUC.ExportPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe_estoque_`+time.Now().Format("20060102_150405")+`.pdf"`)
	return c.Send(out)
}
