// Package auth implementa autenticación (login con JWT) y gestión de usuarios.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/jwt"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// UserStatusActive estado por defecto de un usuario recién creado.
const UserStatusActive = "active"

// UseCase casos de uso de autenticación y usuarios.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login autentica las credenciales y devuelve un JWT.
// Cualquier fallo (usuario inexistente, password incorrecto, usuario inactivo)
// responde el mismo ErrUnauthorized para no filtrar qué parte falló.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return dto.LoginResponse{}, domain.ErrUnauthorized
	}

	user, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	if user == nil || user.Status != UserStatusActive {
		uc.log.Warn().Str("username", req.Username).Msg("login rechazado")
		return dto.LoginResponse{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		uc.log.Warn().Str("username", req.Username).Msg("login rechazado")
		return dto.LoginResponse{}, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login correcto")
	return dto.LoginResponse{Token: token, User: userToResponse(user)}, nil
}

// CreateUser da de alta un usuario (flujo de administración). El password se
// hashea con bcrypt; el rol por defecto es operador.
func (uc *UseCase) CreateUser(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	if req.Username == "" || req.Password == "" {
		return dto.UserResponse{}, domain.ErrInvalidInput
	}
	role := req.Role
	if role == "" {
		role = entity.RoleOperador
	}
	if role != entity.RoleAdmin && role != entity.RoleOperador {
		return dto.UserResponse{}, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		Status:       UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}

	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
	return userToResponse(user), nil
}

// ListUsers devuelve los usuarios registrados (sin hashes).
func (uc *UseCase) ListUsers(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out, nil
}

func userToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
