package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste un usuario. Devuelve domain.ErrUserAlreadyExists si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve el usuario o (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por fecha de alta.
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
}
