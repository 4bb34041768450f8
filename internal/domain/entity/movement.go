package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeCreacion      = "CREACION"      // alta de item
	MovementTypeActualizacion = "ACTUALIZACION" // edición de campo
	MovementTypeEntrada       = "ENTRADA"       // entrada de stock
	MovementTypeSalida        = "SALIDA"        // salida de stock
)

// Movement registro inmutable y append-only del histórico.
// Quantity es la cantidad RESULTANTE tras la operación, no el delta;
// Detail lleva el delta u "old → new" según el tipo.
type Movement struct {
	ID       string
	ItemCode string
	ItemName string
	Type     string
	Detail   string
	Quantity int64
	Date     time.Time
	Username string
}
