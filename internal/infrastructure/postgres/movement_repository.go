package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, item_code, item_name, type, detail, quantity, date, username`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para el histórico. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Asigna ID si viene vacío.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, item_code, item_name, type, detail, quantity, date, username)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ItemCode, m.ItemName, m.Type, m.Detail, m.Quantity, m.Date, m.Username,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve movimientos en orden cronológico inverso con paginación.
func (r *MovementRepo) List(ctx context.Context, limit, offset int) ([]entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByItem devuelve los movimientos de un item en orden cronológico inverso.
func (r *MovementRepo) ListByItem(ctx context.Context, code string, limit, offset int) ([]entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE item_code = $3 ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset, code)
}

func (r *MovementRepo) list(ctx context.Context, query string, limit, offset int, extra ...any) ([]entity.Movement, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ItemCode, &m.ItemName, &m.Type, &m.Detail, &m.Quantity, &m.Date, &m.Username); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// DeleteByItem purga todo el histórico de un item (usado al excluir el item).
func (r *MovementRepo) DeleteByItem(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM movements WHERE item_code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}
