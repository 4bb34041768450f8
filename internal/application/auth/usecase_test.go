package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/jwt"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUserAlreadyExists
	}
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) List(_ context.Context, _, _ int) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

var testJWT = config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "estoque-api"}

func newTestUseCase() (*UseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return NewUseCase(repo, testJWT, logger.New(logger.Config{Level: "error"})), repo
}

func TestCreateUserAndLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	created, err := uc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "admin",
		Password: "admin123",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.Equal(t, UserStatusActive, created.Status)

	resp, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)

	// el token lleva los claims del usuario
	userID, username, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLoginRejections(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "user", Password: "user123"})
	require.NoError(t, err)

	t.Run("password incorrecto", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "user", Password: "otra"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "user123"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("credenciales vacías", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inactivo", func(t *testing.T) {
		repo.users["user"].Status = "inactive"
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "user", Password: "user123"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "x", Password: "y", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUserDefaults(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	created, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "op", Password: "op123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperador, created.Role)

	// el password queda hasheado, nunca en claro
	stored := repo.users["op"]
	assert.NotEqual(t, "op123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("op123")))
}

func TestCreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "admin", Password: "a"})
	require.NoError(t, err)
	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "admin", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}
