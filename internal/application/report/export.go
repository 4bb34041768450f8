package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/stock"
)

// csvHeader columnas del export de estoque, en el orden de la vista tabular.
var csvHeader = []string{
	"Código", "Nombre", "Unidad", "Cantidad", "Mínimo", "Máximo",
	"Localización", "Proveedor", "Precio", "Valor Total", "Status",
	"Última Actualización",
}

// ExportCSV genera el inventario filtrado como CSV con separador ';' y BOM
// UTF-8 al inicio, para que hojas de cálculo en locales latinos lo abran con
// columnas y acentos correctos sin asistente de importación.
func (uc *UseCase) ExportCSV(ctx context.Context, filter dto.ItemFilter) ([]byte, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterItems(items, filter)

	var buf bytes.Buffer
	w := csv.NewWriter(transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder()))
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, it := range filtered {
		row := []string{
			it.Code,
			it.Name,
			it.Unit,
			strconv.FormatInt(it.Quantity, 10),
			strconv.FormatInt(it.Minimum, 10),
			strconv.FormatInt(it.Maximum, 10),
			it.Location,
			it.Supplier,
			it.Price.StringFixed(2),
			it.Valuation().StringFixed(2),
			stock.Status(it.Quantity, it.Minimum, it.Maximum),
			it.UpdatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	uc.log.Info().Int("items", len(filtered)).Msg("export CSV generado")
	return buf.Bytes(), nil
}

// ExportPDF genera el informe PDF del inventario completo.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.snapshot.List(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := uc.pdf.StockReport(items, stock.BuildStats(items), time.Now())
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("items", len(items)).Msg("export PDF generado")
	return doc, nil
}
