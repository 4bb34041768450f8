package stock

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Parámetros del modelo de reposición lineal.
const (
	forecastCycleDays   = 30  // ciclo de reposición simulado
	forecastHorizonDays = 100 // solo se muestran items que tocan el mínimo antes de esto
	forecastNoConsumo   = 999 // centinela cuando el consumo diario es 0
)

var thirty = decimal.NewFromInt(forecastCycleDays)

// ForecastEntry previsión de reposición para un item.
//
// Modelo lineal simple (demo), NO un algoritmo de previsión de demanda:
// el consumo mensual ideal se asume igual a (máximo − mínimo) y se agota de
// forma lineal en un ciclo de 30 días.
type ForecastEntry struct {
	Code              string
	Name              string
	Quantity          int64
	Minimum           int64
	Maximum           int64
	DailyConsumption  decimal.Decimal // (máximo − mínimo) / 30
	DaysUntilMinimum  decimal.Decimal
	ProjectedDate     time.Time // fecha estimada en que se toca el mínimo
	SuggestedPurchase int64     // máximo − cantidad
}

// ReplenishmentForecast aplica el modelo lineal a cada item del snapshot:
//   - solo items con cantidad > 0;
//   - se omiten items con máximo − mínimo <= 0;
//   - se muestran solo los que están por debajo del máximo y tocan el mínimo
//     en menos de 100 días.
//
// El resultado queda ordenado por días hasta el mínimo, ascendente.
func ReplenishmentForecast(items []entity.Item, now time.Time) []ForecastEntry {
	var entries []ForecastEntry
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		monthly := it.Maximum - it.Minimum
		if monthly <= 0 {
			continue
		}
		daily := decimal.NewFromInt(monthly).Div(thirty)

		days := decimal.NewFromInt(forecastNoConsumo)
		if daily.GreaterThan(decimal.Zero) {
			days = decimal.NewFromInt(it.Quantity - it.Minimum).Div(daily)
		}

		if it.Quantity >= it.Maximum || days.GreaterThanOrEqual(decimal.NewFromInt(forecastHorizonDays)) {
			continue
		}

		entries = append(entries, ForecastEntry{
			Code:              it.Code,
			Name:              it.Name,
			Quantity:          it.Quantity,
			Minimum:           it.Minimum,
			Maximum:           it.Maximum,
			DailyConsumption:  daily.Round(2),
			DaysUntilMinimum:  days.Round(1),
			ProjectedDate:     now.Add(time.Duration(days.IntPart()) * 24 * time.Hour),
			SuggestedPurchase: it.Maximum - it.Quantity,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].DaysUntilMinimum.Equal(entries[j].DaysUntilMinimum) {
			return entries[i].DaysUntilMinimum.LessThan(entries[j].DaysUntilMinimum)
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}
