package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	Minimum     int64           `json:"minimum"`
	Maximum     int64           `json:"maximum"`
	Location    string          `json:"location,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateItemRequest body para PATCH /api/items/{code}: solo los campos
// presentes se actualizan; cada edición de campo genera su propio registro
// en el histórico. Code y Quantity nunca se editan por esta vía.
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Minimum     *int64           `json:"minimum,omitempty"`
	Maximum     *int64           `json:"maximum,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Supplier    *string          `json:"supplier,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ItemResponse salida de un item con sus campos derivados.
type ItemResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	Minimum     int64           `json:"minimum"`
	Maximum     int64           `json:"maximum"`
	Location    string          `json:"location,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Valuation   decimal.Decimal `json:"valuation"` // cantidad × precio
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse listado de items con total.
type ItemListResponse struct {
	Total int            `json:"total"`
	Items []ItemResponse `json:"items"`
}

// ItemFilter filtros de la vista de estoque (query params).
type ItemFilter struct {
	Search   string `query:"search"`   // código o nombre, case-insensitive
	Supplier string `query:"supplier"` // vacío = todos
	Location string `query:"location"` // vacío = todas
	Status   string `query:"status"`   // vacío = todos
}
