// Package stock contiene la lógica pura de clasificación del inventario:
// status por item, alertas tempranas, curva ABC, tasa de ocupación y
// previsión de reposición. Ninguna función muta estado; todas operan sobre
// un snapshot de items.
package stock

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// Status de un item para la vista tabular (partición de 4 vías, excluyente).
const (
	StatusSinStock    = "SIN_STOCK"
	StatusBajoMinimo  = "BAJO_MINIMO"
	StatusSobreMaximo = "SOBRE_MAXIMO"
	StatusNormal      = "NORMAL"
)

// Status clasifica (cantidad, mínimo, máximo) en exactamente uno de los cuatro
// estados, evaluados en orden de prioridad estricto.
//
// Nota: Alerts usa un clasificador distinto con una banda extra de reposición
// (cantidad < mínimo × 1.2). Son dos vistas intencionalmente separadas sobre
// los mismos umbrales; no unificar.
func Status(quantity, minimum, maximum int64) string {
	switch {
	case quantity == 0:
		return StatusSinStock
	case quantity < minimum:
		return StatusBajoMinimo
	case quantity > maximum:
		return StatusSobreMaximo
	default:
		return StatusNormal
	}
}

// AlertItem resumen de un item dentro de un bucket de alerta.
type AlertItem struct {
	Code     string
	Name     string
	Quantity int64
	Minimum  int64
	Maximum  int64
}

// Alerts buckets de alerta temprana. Un item cae como máximo en un bucket;
// los items en rango normal no aparecen en ninguno.
type Alerts struct {
	Criticos   []AlertItem // cantidad == 0
	Bajos      []AlertItem // cantidad < mínimo
	Reposicion []AlertItem // cantidad < mínimo × 1.2
	Excesos    []AlertItem // cantidad > máximo
}

// BuildAlerts clasifica el snapshot en los cuatro buckets, evaluando las
// condiciones en orden: sin stock, bajo mínimo, banda de reposición, exceso.
func BuildAlerts(items []entity.Item) Alerts {
	var a Alerts
	for _, it := range items {
		entry := AlertItem{
			Code:     it.Code,
			Name:     it.Name,
			Quantity: it.Quantity,
			Minimum:  it.Minimum,
			Maximum:  it.Maximum,
		}
		switch {
		case it.Quantity == 0:
			a.Criticos = append(a.Criticos, entry)
		case it.Quantity < it.Minimum:
			a.Bajos = append(a.Bajos, entry)
		// banda de reposición: cantidad < mínimo × 1.2, en aritmética entera exacta
		case it.Quantity*10 < it.Minimum*12:
			a.Reposicion = append(a.Reposicion, entry)
		case it.Quantity > it.Maximum:
			a.Excesos = append(a.Excesos, entry)
		}
	}
	return a
}
