package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia para el histórico (append-only).
type MovementRepository interface {
	// Create persiste un movimiento. Asigna ID si viene vacío.
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve movimientos en orden cronológico inverso.
	List(ctx context.Context, limit, offset int) ([]entity.Movement, error)
	// ListByItem devuelve los movimientos de un item en orden cronológico inverso.
	ListByItem(ctx context.Context, code string, limit, offset int) ([]entity.Movement, error)
	// DeleteByItem purga todo el histórico de un item (usado al excluir el item).
	DeleteByItem(ctx context.Context, code string) error
}
