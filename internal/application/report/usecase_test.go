package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/stock"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

type staticSnapshot struct {
	items []entity.Item
}

func (s *staticSnapshot) List(_ context.Context) ([]entity.Item, error) {
	return s.items, nil
}

func newTestUseCase(items []entity.Item) *UseCase {
	return NewUseCase(&staticSnapshot{items: items}, nil, logger.New(logger.Config{Level: "error"}))
}

func item(code string, qty, min, max int64, price int64) entity.Item {
	return entity.Item{
		Code:     code,
		Name:     "Item " + code,
		Unit:     "unidad",
		Quantity: qty,
		Minimum:  min,
		Maximum:  max,
		Price:    decimal.NewFromInt(price),
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase([]entity.Item{
		item("A", 0, 5, 50, 10),  // SIN_STOCK, crítico
		item("B", 3, 5, 50, 10),  // BAJO_MINIMO, crítico
		item("C", 60, 5, 50, 10), // SOBRE_MAXIMO, exceso
		item("D", 30, 5, 50, 10), // NORMAL
	})

	s, err := uc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, s.TotalItems)
	assert.Equal(t, int64(93), s.TotalQuantity)
	assert.True(t, s.TotalValuation.Equal(decimal.NewFromInt(930)))
	assert.Equal(t, 2, s.CriticalCount)
	assert.Equal(t, 1, s.ExcessCount)
	// 93 / 200 × 100 = 46.5
	assert.True(t, s.OccupancyRate.Equal(decimal.NewFromFloat(46.5)), "ocupación = %s", s.OccupancyRate)

	assert.Equal(t, map[string]int{
		stock.StatusSinStock:    1,
		stock.StatusBajoMinimo:  1,
		stock.StatusSobreMaximo: 1,
		stock.StatusNormal:      1,
	}, s.StatusBreakdown)
}

func TestSummaryEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	s, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalItems)
	assert.True(t, s.OccupancyRate.IsZero()) // sin división por cero
}

func TestABCClasses(t *testing.T) {
	ctx := context.Background()
	// valuaciones 800 / 150 / 50: acumulados 80%, 95%, 100%
	uc := newTestUseCase([]entity.Item{
		item("HI", 8, 1, 100, 100), // 800
		item("MD", 3, 1, 100, 50),  // 150
		item("LO", 5, 1, 100, 10),  // 50
	})

	resp, err := uc.ABC(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	assert.Equal(t, "HI", resp.Entries[0].Code)
	assert.Equal(t, stock.ClassA, resp.Entries[0].Class)
	assert.Equal(t, "MD", resp.Entries[1].Code)
	assert.Equal(t, stock.ClassB, resp.Entries[1].Class)
	assert.Equal(t, "LO", resp.Entries[2].Code)
	assert.Equal(t, stock.ClassC, resp.Entries[2].Class)

	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, resp.ClassSKUs)
}

func TestABCInputOrderIrrelevant(t *testing.T) {
	ctx := context.Background()
	base := []entity.Item{
		item("HI", 8, 1, 100, 100),
		item("MD", 3, 1, 100, 50),
		item("LO", 5, 1, 100, 10),
	}
	want, err := newTestUseCase(base).ABC(ctx)
	require.NoError(t, err)

	permuted := []entity.Item{base[2], base[0], base[1]}
	got, err := newTestUseCase(permuted).ABC(ctx)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestForecast(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase([]entity.Item{
		item("URGENT", 12, 10, 40, 1), // daily=1, días=2
		item("LATER", 35, 10, 40, 1),  // daily=1, días=25
		item("FULL", 40, 10, 40, 1),   // en el máximo: fuera
		item("ZERO", 0, 10, 40, 1),    // sin stock: fuera
		item("FLAT", 20, 40, 40, 1),   // máx−mín=0: fuera
		item("FAR", 150, 10, 160, 1),  // daily=5, días=28: dentro
	})

	resp, err := uc.Forecast(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	assert.Equal(t, "URGENT", resp.Entries[0].Code)
	assert.True(t, resp.Entries[0].DaysUntilMinimum.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, int64(28), resp.Entries[0].SuggestedPurchase) // 40 − 12
	assert.Equal(t, now.Add(48*time.Hour), resp.Entries[0].ProjectedDate)

	assert.Equal(t, "LATER", resp.Entries[1].Code)
	assert.Equal(t, "FAR", resp.Entries[2].Code)
}

func TestForecastHorizonCutoff(t *testing.T) {
	ctx := context.Background()
	// daily = (310−10)/30 = 10; días = (1200−10)/10 = 119 >= 100: fuera
	uc := newTestUseCase([]entity.Item{item("SLOW", 1200, 10, 310, 1)})

	resp, err := uc.Forecast(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}

func TestGroupTotals(t *testing.T) {
	ctx := context.Background()
	a1 := item("A1", 10, 1, 100, 5) // 50
	a1.Supplier, a1.Location = "ACME", "A-01"
	a2 := item("A2", 2, 1, 100, 100) // 200
	a2.Supplier, a2.Location = "ACME", "B-02"
	b1 := item("B1", 30, 1, 100, 1) // 30
	b1.Supplier, b1.Location = "Umbrella", "A-01"
	uc := newTestUseCase([]entity.Item{a1, a2, b1})

	suppliers, err := uc.Suppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "ACME", suppliers[0].Key) // 250 > 30
	assert.Equal(t, 2, suppliers[0].SKUs)
	assert.True(t, suppliers[0].Valuation.Equal(decimal.NewFromInt(250)))

	locations, err := uc.Locations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "A-01", locations[0].Key) // cantidad 40 > 2
	assert.Equal(t, int64(40), locations[0].Quantity)
}

func TestFilterItems(t *testing.T) {
	a := item("TOR-01", 0, 5, 50, 10)
	a.Name, a.Supplier, a.Location = "Tornillo M8", "ACME", "A-01"
	b := item("TUE-02", 30, 5, 50, 10)
	b.Name, b.Supplier, b.Location = "Tuerca M8", "Umbrella", "B-02"
	items := []entity.Item{a, b}

	t.Run("búsqueda por nombre, case-insensitive", func(t *testing.T) {
		got := FilterItems(items, dto.ItemFilter{Search: "tornillo"})
		require.Len(t, got, 1)
		assert.Equal(t, "TOR-01", got[0].Code)
	})

	t.Run("búsqueda por código", func(t *testing.T) {
		got := FilterItems(items, dto.ItemFilter{Search: "tue-"})
		require.Len(t, got, 1)
		assert.Equal(t, "TUE-02", got[0].Code)
	})

	t.Run("proveedor exacto", func(t *testing.T) {
		got := FilterItems(items, dto.ItemFilter{Supplier: "ACME"})
		require.Len(t, got, 1)
		assert.Equal(t, "TOR-01", got[0].Code)
	})

	t.Run("status calculado", func(t *testing.T) {
		got := FilterItems(items, dto.ItemFilter{Status: stock.StatusSinStock})
		require.Len(t, got, 1)
		assert.Equal(t, "TOR-01", got[0].Code)
	})

	t.Run("filtros combinados sin resultado", func(t *testing.T) {
		got := FilterItems(items, dto.ItemFilter{Supplier: "ACME", Location: "B-02"})
		assert.Empty(t, got)
	})

	t.Run("sin filtros devuelve todo", func(t *testing.T) {
		assert.Len(t, FilterItems(items, dto.ItemFilter{}), 2)
	})
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	it := item("TOR-01", 7, 5, 50, 10)
	it.Name, it.Location, it.Supplier = "Tornillo M8", "A-01", "ACME"
	it.UpdatedAt = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	uc := newTestUseCase([]entity.Item{it})

	out, err := uc.ExportCSV(ctx, dto.ItemFilter{})
	require.NoError(t, err)

	// BOM UTF-8 al inicio
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	body := string(out[3:])
	lines := bytes.Split(bytes.TrimSpace([]byte(body)), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "Código;Nombre;Unidad")
	assert.Equal(t, "TOR-01;Tornillo M8;unidad;7;5;50;A-01;ACME;10.00;70.00;NORMAL;2026-03-01 10:30", string(lines[1]))
}

func TestExportCSVRespectsFilter(t *testing.T) {
	ctx := context.Background()
	a := item("A", 10, 1, 50, 10)
	a.Supplier = "ACME"
	b := item("B", 10, 1, 50, 10)
	b.Supplier = "Umbrella"
	uc := newTestUseCase([]entity.Item{a, b})

	out, err := uc.ExportCSV(ctx, dto.ItemFilter{Supplier: "ACME"})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	assert.Len(t, lines, 2) // cabecera + 1 fila
}
