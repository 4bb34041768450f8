package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un SKU del inventario. Code es inmutable una vez creado;
// Quantity solo se modifica vía entradas/salidas del ledger y nunca es negativa.
type Item struct {
	Code        string // código único, inmutable
	Name        string
	Description string
	Unit        string // PÇ, M, KG, UN, CX
	Quantity    int64
	Minimum     int64 // umbral de alerta inferior (mínimo < máximo al crear)
	Maximum     int64 // capacidad objetivo
	Location    string
	Supplier    string
	Price       decimal.Decimal // precio unitario
	UpdatedAt   time.Time
}

// Valuation devuelve el valor total del item (cantidad × precio unitario).
func (i Item) Valuation() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.Price)
}
