package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertItemDTO resumen de un item dentro de un bucket de alerta.
type AlertItemDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Minimum  int64  `json:"minimum"`
	Maximum  int64  `json:"maximum"`
}

// AlertsResponse los cuatro buckets de alerta temprana.
type AlertsResponse struct {
	Criticos   []AlertItemDTO `json:"criticos"`
	Bajos      []AlertItemDTO `json:"bajos"`
	Reposicion []AlertItemDTO `json:"reposicion"`
	Excesos    []AlertItemDTO `json:"excesos"`
}

// SummaryResponse métricas agregadas + desglose por status (tablero).
type SummaryResponse struct {
	TotalItems      int             `json:"total_items"`
	TotalQuantity   int64           `json:"total_quantity"`
	TotalValuation  decimal.Decimal `json:"total_valuation"`
	CriticalCount   int             `json:"critical_count"`
	ExcessCount     int             `json:"excess_count"`
	OccupancyRate   decimal.Decimal `json:"occupancy_rate"`
	StatusBreakdown map[string]int  `json:"status_breakdown"`
}

// ABCEntryDTO un item de la curva ABC.
type ABCEntryDTO struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity"`
	Valuation   decimal.Decimal `json:"valuation"`
	CumValuePct decimal.Decimal `json:"cum_value_pct"`
	CumItemPct  decimal.Decimal `json:"cum_item_pct"`
	Class       string          `json:"class"`
	Supplier    string          `json:"supplier,omitempty"`
	Location    string          `json:"location,omitempty"`
}

// ABCResponse curva ABC completa ordenada por valuación descendente.
type ABCResponse struct {
	Total     int            `json:"total"`
	Entries   []ABCEntryDTO  `json:"entries"`
	ClassSKUs map[string]int `json:"class_skus"` // SKUs por clase
}

// ForecastEntryDTO previsión de reposición (modelo lineal simple).
type ForecastEntryDTO struct {
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Quantity          int64           `json:"quantity"`
	Minimum           int64           `json:"minimum"`
	Maximum           int64           `json:"maximum"`
	DailyConsumption  decimal.Decimal `json:"daily_consumption"`
	DaysUntilMinimum  decimal.Decimal `json:"days_until_minimum"`
	ProjectedDate     time.Time       `json:"projected_date"`
	SuggestedPurchase int64           `json:"suggested_purchase"`
}

// ForecastResponse previsión de reposición ordenada por urgencia.
type ForecastResponse struct {
	Model   string             `json:"model"` // etiqueta del modelo (lineal simple)
	Total   int                `json:"total"`
	Entries []ForecastEntryDTO `json:"entries"`
}

// GroupTotalDTO agregado por proveedor o localización.
type GroupTotalDTO struct {
	Key       string          `json:"key"`
	SKUs      int             `json:"skus"`
	Quantity  int64           `json:"quantity"`
	Valuation decimal.Decimal `json:"valuation"`
}
