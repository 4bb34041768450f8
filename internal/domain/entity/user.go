package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"    // CRUD completo, exclusión y configuración
	RoleOperador = "operador" // movimientos y ediciones, sin alta ni exclusión
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
