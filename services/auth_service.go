package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ITokenService interface {
	Generate(user *models.User) (string, error)
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type AuthService struct {
	userRepo IUserRepository
	tokens   ITokenService
}

func NewAuthService(userRepo IUserRepository, tokens ITokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a customer account and issues a credential. Emails are
// normalized to lower case before lookup and persist, so uniqueness is
// case-insensitive.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", apperrors.Conflict("User already exists with this email")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.Internal("Failed to create account", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to create account", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleCustomer,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index catches the race the pre-check above cannot:
		// two registrations for the same email in flight at once.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperrors.Conflict("User already exists with this email")
		}
		return nil, "", apperrors.Internal("Failed to create account", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to issue credential", err)
	}
	return user, token, nil
}

// Login verifies the credentials and issues a fresh token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", apperrors.Unauthenticated("Invalid email or password")
		}
		return nil, "", apperrors.Internal("Login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthenticated("Invalid email or password")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to issue credential", err)
	}
	return user, token, nil
}
