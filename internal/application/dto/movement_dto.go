package dto

import "time"

// MovementRequest body para POST /api/items/{code}/entries y /exits.
type MovementRequest struct {
	Quantity int64  `json:"quantity"`
	Note     string `json:"note,omitempty"` // motivo, NF, etc.
}

// MovementResponse un registro del histórico.
type MovementResponse struct {
	ID       string    `json:"id"`
	ItemCode string    `json:"item_code"`
	ItemName string    `json:"item_name"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail,omitempty"`
	Quantity int64     `json:"quantity"` // cantidad resultante
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// MovementListResponse histórico paginado en orden cronológico inverso.
type MovementListResponse struct {
	Total     int                `json:"total"`
	Movements []MovementResponse `json:"movements"`
}
