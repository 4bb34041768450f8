package stock

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Stats métricas agregadas del inventario (fila de indicadores del tablero).
type Stats struct {
	TotalItems     int
	TotalQuantity  int64
	TotalValuation decimal.Decimal
	CriticalCount  int             // cantidad < mínimo
	ExcessCount    int             // cantidad > máximo
	OccupancyRate  decimal.Decimal // Σ cantidad / Σ máximo × 100
}

// BuildStats agrega el snapshot completo.
func BuildStats(items []entity.Item) Stats {
	s := Stats{TotalValuation: decimal.Zero, OccupancyRate: decimal.Zero}
	var maxSum int64
	for _, it := range items {
		s.TotalItems++
		s.TotalQuantity += it.Quantity
		s.TotalValuation = s.TotalValuation.Add(it.Valuation())
		maxSum += it.Maximum
		if it.Quantity < it.Minimum {
			s.CriticalCount++
		}
		if it.Quantity > it.Maximum {
			s.ExcessCount++
		}
	}
	s.OccupancyRate = OccupancyRate(s.TotalQuantity, maxSum)
	return s
}

// OccupancyRate devuelve (Σ cantidad / Σ máximo) × 100, o exactamente 0 cuando
// la suma de máximos es 0 (snapshot vacío o degenerado).
func OccupancyRate(quantitySum, maximumSum int64) decimal.Decimal {
	if maximumSum == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(quantitySum).
		Div(decimal.NewFromInt(maximumSum)).
		Mul(hundred).
		Round(2)
}

// StatusBreakdown cuenta los items por status (vista del gráfico de pizza).
func StatusBreakdown(items []entity.Item) map[string]int {
	counts := make(map[string]int, 4)
	for _, it := range items {
		counts[Status(it.Quantity, it.Minimum, it.Maximum)]++
	}
	return counts
}

// GroupTotal agregado de un grupo de items (por proveedor o por localización).
type GroupTotal struct {
	Key       string
	SKUs      int
	Quantity  int64
	Valuation decimal.Decimal
}

// GroupBySupplier agrupa por proveedor, ordenado por valuación descendente.
func GroupBySupplier(items []entity.Item) []GroupTotal {
	return groupBy(items, func(it entity.Item) string { return it.Supplier }, func(a, b GroupTotal) bool {
		return a.Valuation.GreaterThan(b.Valuation)
	})
}

// GroupByLocation agrupa por localización, ordenado por cantidad descendente.
func GroupByLocation(items []entity.Item) []GroupTotal {
	return groupBy(items, func(it entity.Item) string { return it.Location }, func(a, b GroupTotal) bool {
		return a.Quantity > b.Quantity
	})
}

func groupBy(items []entity.Item, key func(entity.Item) string, less func(a, b GroupTotal) bool) []GroupTotal {
	byKey := make(map[string]*GroupTotal)
	for _, it := range items {
		k := key(it)
		g, ok := byKey[k]
		if !ok {
			g = &GroupTotal{Key: k, Valuation: decimal.Zero}
			byKey[k] = g
		}
		g.SKUs++
		g.Quantity += it.Quantity
		g.Valuation = g.Valuation.Add(it.Valuation())
	}
	groups := make([]GroupTotal, 0, len(byKey))
	for _, g := range byKey {
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.Key < b.Key // desempate estable
	})
	return groups
}
