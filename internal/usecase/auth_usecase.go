package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/logger"
	"autonova/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user account is inactive")
	ErrUsernameTaken      = errors.New("username already taken")
)

var validRoles = map[entities.Role]bool{
	entities.RoleAdmin:        true,
	entities.RoleManager:      true,
	entities.RoleReceptionist: true,
	entities.RoleTechnician:   true,
	entities.RoleAccountant:   true,
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      entities.Role
}

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, username, password string) (string, entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return entities.User{}, entities.NewValidationError("username", "is required")
	}
	if in.Email == "" {
		return entities.User{}, entities.NewValidationError("email", "is required")
	}
	if len(in.Password) < 8 {
		return entities.User{}, entities.NewValidationError("password", "must be at least 8 characters")
	}
	if !validRoles[in.Role] {
		return entities.User{}, entities.NewValidationError("role", "unknown role")
	}

	existing, err := u.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	logger.L().Info("user registered",
		zap.String("user_id", created.ID),
		zap.String("role", string(created.Role)))
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", entities.User{}, ErrInactiveUser
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}
