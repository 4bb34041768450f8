// Package report expone las vistas de solo lectura del tablero: resumen
// agregado, curva ABC, previsión de reposición, agrupaciones y exportaciones.
// Todas operan sobre el snapshot de items que sirve el ledger (cacheado allí).
package report

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/stock"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// forecastModelLabel etiqueta informativa del modelo de previsión.
const forecastModelLabel = "lineal simple (máx − mín) / 30 días"

// SnapshotProvider fuente del snapshot completo del inventario.
type SnapshotProvider interface {
	List(ctx context.Context) ([]entity.Item, error)
}

// PDFGenerator puerto de generación del informe PDF.
type PDFGenerator interface {
	StockReport(items []entity.Item, stats stock.Stats, generatedAt time.Time) ([]byte, error)
}

// UseCase vistas analíticas del inventario.
type UseCase struct {
	snapshot SnapshotProvider
	pdf      PDFGenerator
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de informes.
func NewUseCase(snapshot SnapshotProvider, pdf PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{snapshot: snapshot, pdf: pdf, log: log}
}

// Items devuelve el snapshot filtrado como vista tabular, con los campos
// derivados (valuación y status) calculados por fila.
func (uc *UseCase) Items(ctx context.Context, filter dto.ItemFilter) (dto.ItemListResponse, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return dto.ItemListResponse{}, err
	}
	filtered := FilterItems(items, filter)
	out := make([]dto.ItemResponse, 0, len(filtered))
	for _, it := range filtered {
		out = append(out, ItemToResponse(it))
	}
	return dto.ItemListResponse{Total: len(out), Items: out}, nil
}

// Summary métricas agregadas + desglose por status.
func (uc *UseCase) Summary(ctx context.Context) (dto.SummaryResponse, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	s := stock.BuildStats(items)
	return dto.SummaryResponse{
		TotalItems:      s.TotalItems,
		TotalQuantity:   s.TotalQuantity,
		TotalValuation:  s.TotalValuation,
		CriticalCount:   s.CriticalCount,
		ExcessCount:     s.ExcessCount,
		OccupancyRate:   s.OccupancyRate,
		StatusBreakdown: stock.StatusBreakdown(items),
	}, nil
}

// ABC curva ABC completa del inventario.
func (uc *UseCase) ABC(ctx context.Context) (dto.ABCResponse, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return dto.ABCResponse{}, err
	}
	entries := stock.ABCClassify(items)
	out := make([]dto.ABCEntryDTO, 0, len(entries))
	classSKUs := map[string]int{stock.ClassA: 0, stock.ClassB: 0, stock.ClassC: 0}
	for _, e := range entries {
		classSKUs[e.Class]++
		out = append(out, dto.ABCEntryDTO{
			Code:        e.Code,
			Name:        e.Name,
			Quantity:    e.Quantity,
			Valuation:   e.Valuation,
			CumValuePct: e.CumValuePct,
			CumItemPct:  e.CumItemPct,
			Class:       e.Class,
			Supplier:    e.Supplier,
			Location:    e.Location,
		})
	}
	return dto.ABCResponse{Total: len(out), Entries: out, ClassSKUs: classSKUs}, nil
}

// Forecast previsión de reposición ordenada por urgencia.
func (uc *UseCase) Forecast(ctx context.Context, now time.Time) (dto.ForecastResponse, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return dto.ForecastResponse{}, err
	}
	entries := stock.ReplenishmentForecast(items, now)
	out := make([]dto.ForecastEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ForecastEntryDTO{
			Code:              e.Code,
			Name:              e.Name,
			Quantity:          e.Quantity,
			Minimum:           e.Minimum,
			Maximum:           e.Maximum,
			DailyConsumption:  e.DailyConsumption,
			DaysUntilMinimum:  e.DaysUntilMinimum,
			ProjectedDate:     e.ProjectedDate,
			SuggestedPurchase: e.SuggestedPurchase,
		})
	}
	return dto.ForecastResponse{Model: forecastModelLabel, Total: len(out), Entries: out}, nil
}

// Suppliers totales agrupados por proveedor, valuación descendente.
func (uc *UseCase) Suppliers(ctx context.Context) ([]dto.GroupTotalDTO, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return nil, err
	}
	return groupTotals(stock.GroupBySupplier(items)), nil
}

// Locations totales agrupados por localización, cantidad descendente.
func (uc *UseCase) Locations(ctx context.Context) ([]dto.GroupTotalDTO, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return nil, err
	}
	return groupTotals(stock.GroupByLocation(items)), nil
}

func groupTotals(groups []stock.GroupTotal) []dto.GroupTotalDTO {
	out := make([]dto.GroupTotalDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupTotalDTO{
			Key:       g.Key,
			SKUs:      g.SKUs,
			Quantity:  g.Quantity,
			Valuation: g.Valuation,
		})
	}
	return out
}

// FilterItems aplica los filtros de la vista tabular: búsqueda por código o
// nombre (case-insensitive, substring), proveedor y localización exactos, y
// status calculado. Campos vacíos no filtran.
func FilterItems(items []entity.Item, f dto.ItemFilter) []entity.Item {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entity.Item, 0, len(items))
	for _, it := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Code), search) &&
			!strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if f.Supplier != "" && it.Supplier != f.Supplier {
			continue
		}
		if f.Location != "" && it.Location != f.Location {
			continue
		}
		if f.Status != "" && stock.Status(it.Quantity, it.Minimum, it.Maximum) != f.Status {
			continue
		}
		out = append(out, it)
	}
	return out
}

// ItemToResponse proyecta la entidad a la vista tabular con campos derivados.
func ItemToResponse(it entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		Code:        it.Code,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		Quantity:    it.Quantity,
		Minimum:     it.Minimum,
		Maximum:     it.Maximum,
		Location:    it.Location,
		Supplier:    it.Supplier,
		Price:       it.Price,
		Valuation:   it.Valuation(),
		Status:      stock.Status(it.Quantity, it.Minimum, it.Maximum),
		UpdatedAt:   it.UpdatedAt,
	}
}

// AlertsToResponse proyecta los buckets de alerta al DTO de salida.
func AlertsToResponse(a stock.Alerts) dto.AlertsResponse {
	conv := func(items []stock.AlertItem) []dto.AlertItemDTO {
		out := make([]dto.AlertItemDTO, 0, len(items))
		for _, it := range items {
			out = append(out, dto.AlertItemDTO{
				Code:     it.Code,
				Name:     it.Name,
				Quantity: it.Quantity,
				Minimum:  it.Minimum,
				Maximum:  it.Maximum,
			})
		}
		return out
	}
	return dto.AlertsResponse{
		Criticos:   conv(a.Criticos),
		Bajos:      conv(a.Bajos),
		Reposicion: conv(a.Reposicion),
		Excesos:    conv(a.Excesos),
	}
}
