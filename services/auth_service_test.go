package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
)

func newTestTokens() *TokenService {
	return NewTokenService("test-secret", 30*24*time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestTokens())

		repo.On("FindByEmail", ctx, "a@x.com").Return(nil, repository.ErrNotFound).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

		user, token, err := svc.Register(ctx, RegisterRequest{
			Name:     "Ana",
			Email:    "a@x.com",
			Password: "strongpassword123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.NotEqual(t, "strongpassword123", user.Password, "password must be stored hashed")
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestTokens())

		existing := &models.User{Email: "a@x.com"}
		repo.On("FindByEmail", ctx, "a@x.com").Return(existing, nil).Once()

		_, _, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "pw123456"})

		assert.Equal(t, 409, apperrors.From(err).Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Concurrent Duplicate Caught By Unique Index", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestTokens())

		// A second registration racing past the pre-check: the lookup sees
		// nothing, but the insert hits the unique index.
		repo.On("FindByEmail", ctx, "a@x.com").Return(nil, repository.ErrNotFound).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicate).Once()

		_, _, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "pw123456"})

		assert.Equal(t, 409, apperrors.From(err).Code)
		repo.AssertExpectations(t)
	})

	t.Run("Email Uniqueness Is Case Insensitive", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestTokens())

		existing := &models.User{Email: "a@x.com"}
		// The mixed-case input must be normalized before the lookup.
		repo.On("FindByEmail", ctx, "a@x.com").Return(existing, nil).Once()

		_, _, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "A@X.com", Password: "pw123456"})

		assert.Equal(t, 409, apperrors.From(err).Code)
		repo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("strongpassword123"), bcrypt.DefaultCost)
	stored := &models.User{
		Email:    "a@x.com",
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepository)
		tokens := newTestTokens()
		svc := NewAuthService(repo, tokens)

		repo.On("FindByEmail", ctx, "a@x.com").Return(stored, nil).Once()

		user, token, err := svc.Login(ctx, "a@x.com", "strongpassword123")

		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)

		// The issued credential must resolve back to the same user.
		userID, err := tokens.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, userID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestTokens())

		repo.On("FindByEmail", ctx, "a@x.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, "a@x.com", "wrongpassword")

		assert.Equal(t, 401, apperrors.From(err).Code)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestTokens())

		repo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, repository.ErrNotFound).Once()

		_, _, err := svc.Login(ctx, "nobody@x.com", "whatever")

		assert.Equal(t, 401, apperrors.From(err).Code)
	})
}

func TestTokenValidate(t *testing.T) {
	tokens := newTestTokens()
	user := &models.User{Email: "a@x.com", Role: models.RoleCustomer}

	t.Run("Round Trip", func(t *testing.T) {
		token, err := tokens.Generate(user)
		assert.NoError(t, err)

		userID, err := tokens.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := tokens.Validate("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, _ := other.Generate(user)

		_, err := tokens.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, _ := expired.Generate(user)

		_, err := tokens.Validate(token)
		assert.Error(t, err)
	})
}
