package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para items del inventario.
type ItemRepository interface {
	// Create inserta el item. Devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, item *entity.Item) error
	// GetByCode devuelve el item o (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// GetForUpdate devuelve el item bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, code string) (*entity.Item, error)
	// List devuelve el snapshot completo ordenado por código.
	List(ctx context.Context) ([]entity.Item, error)
	// UpdateField actualiza una única columna y refresca updated_at.
	// Devuelve el número de filas afectadas.
	UpdateField(ctx context.Context, code, column string, value any) (int64, error)
	// UpdateQuantity fija la cantidad resultante y refresca updated_at.
	UpdateQuantity(ctx context.Context, code string, quantity int64) error
	// Delete elimina el item por código. Devuelve filas afectadas.
	Delete(ctx context.Context, code string) (int64, error)
}

// FieldValue par campo/valor tipado para ediciones (el boundary valida una vez,
// no ad hoc por acceso).
type FieldValue struct {
	Name    string
	Text    string
	Number  int64
	Price   decimal.Decimal
	IsText  bool
	IsPrice bool
}
