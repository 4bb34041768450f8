package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `code, name, description, unit, quantity, minimum, maximum, location, supplier, price, updated_at`

// Columnas editables vía UpdateField. El nombre de columna llega del use case,
// pero se valida aquí igualmente: nunca se interpola texto externo en el SQL.
var itemUpdatableColumns = map[string]bool{
	"name":        true,
	"description": true,
	"unit":        true,
	"location":    true,
	"supplier":    true,
	"minimum":     true,
	"maximum":     true,
	"price":       true,
}

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (code, name, description, unit, quantity, minimum, maximum, location, supplier, price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		item.Code, item.Name, item.Description, item.Unit,
		item.Quantity, item.Minimum, item.Maximum,
		item.Location, item.Supplier, item.Price, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByCode obtiene un item por código, o (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	return r.get(ctx, code, false)
}

// GetForUpdate obtiene un item bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ItemRepo) GetForUpdate(ctx context.Context, code string) (*entity.Item, error) {
	return r.get(ctx, code, true)
}

func (r *ItemRepo) get(ctx context.Context, code string, forUpdate bool) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE code = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var it entity.Item
	err := r.q.QueryRow(ctx, query, code).Scan(
		&it.Code, &it.Name, &it.Description, &it.Unit,
		&it.Quantity, &it.Minimum, &it.Maximum,
		&it.Location, &it.Supplier, &it.Price, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List devuelve el snapshot completo ordenado por código.
func (r *ItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.Code, &it.Name, &it.Description, &it.Unit,
			&it.Quantity, &it.Minimum, &it.Maximum,
			&it.Location, &it.Supplier, &it.Price, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// UpdateField actualiza una única columna y refresca updated_at.
func (r *ItemRepo) UpdateField(ctx context.Context, code, column string, value any) (int64, error) {
	if !itemUpdatableColumns[column] {
		return 0, fmt.Errorf("columna no editable: %s", column)
	}
	query := fmt.Sprintf(`UPDATE items SET %s = $2, updated_at = now() WHERE code = $1`, column)
	cmd, err := r.q.Exec(ctx, query, code, value)
	if err != nil {
		return 0, fmt.Errorf("update item %s: %w", column, err)
	}
	return cmd.RowsAffected(), nil
}

// UpdateQuantity fija la cantidad resultante y refresca updated_at.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, code string, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET quantity = $2, updated_at = now() WHERE code = $1`,
		code, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// Delete elimina un item por código. Devuelve filas afectadas.
func (r *ItemRepo) Delete(ctx context.Context, code string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM items WHERE code = $1`, code)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return cmd.RowsAffected(), nil
}
