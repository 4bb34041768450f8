package stock

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Clases de la curva ABC (80/15/5).
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"
)

var (
	abcCutA = decimal.NewFromInt(80)
	abcCutB = decimal.NewFromInt(95)
	hundred = decimal.NewFromInt(100)
)

// ABCEntry un item clasificado dentro de la curva ABC.
type ABCEntry struct {
	Code        string
	Name        string
	Quantity    int64
	Valuation   decimal.Decimal
	CumValuePct decimal.Decimal // % de valor acumulado hasta este item
	CumItemPct  decimal.Decimal // % de items acumulado hasta este item
	Class       string
	Supplier    string
	Location    string
}

// ABCClassify ordena el snapshot por valuación descendente y asigna clase A a
// los items cuyo % de valor acumulado es <= 80, B hasta 95 y C el resto.
//
// Desempate para valuaciones iguales: código ascendente. Esto hace la
// clasificación determinista ante cualquier orden de entrada.
func ABCClassify(items []entity.Item) []ABCEntry {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]entity.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := sorted[i].Valuation(), sorted[j].Valuation()
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return sorted[i].Code < sorted[j].Code
	})

	total := decimal.Zero
	for _, it := range sorted {
		total = total.Add(it.Valuation())
	}

	entries := make([]ABCEntry, 0, len(sorted))
	cum := decimal.Zero
	count := decimal.NewFromInt(int64(len(sorted)))
	for i, it := range sorted {
		v := it.Valuation()
		cum = cum.Add(v)

		cumValuePct := hundred
		if total.GreaterThan(decimal.Zero) {
			cumValuePct = cum.Div(total).Mul(hundred)
		}
		cumItemPct := decimal.NewFromInt(int64(i + 1)).Div(count).Mul(hundred)

		entries = append(entries, ABCEntry{
			Code:        it.Code,
			Name:        it.Name,
			Quantity:    it.Quantity,
			Valuation:   v,
			CumValuePct: cumValuePct.Round(2),
			CumItemPct:  cumItemPct.Round(2),
			Class:       abcClass(cumValuePct),
			Supplier:    it.Supplier,
			Location:    it.Location,
		})
	}
	return entries
}

func abcClass(cumValuePct decimal.Decimal) string {
	switch {
	case cumValuePct.LessThanOrEqual(abcCutA):
		return ClassA
	case cumValuePct.LessThanOrEqual(abcCutB):
		return ClassB
	default:
		return ClassC
	}
}
