package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tick_store/internal/feature/auth/domain"
)

type mockJWTGenerator struct {
	GenerateTokenFunc func(subject string) (string, error)
	Calls             int
}

func (m *mockJWTGenerator) GenerateToken(subject string) (string, error) {
	m.Calls++
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(subject)
	}
	return "signed-token", nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	t.Parallel()

	gen := &mockJWTGenerator{
		GenerateTokenFunc: func(subject string) (string, error) {
			assert.Equal(t, "operator", subject)
			return "signed-token", nil
		},
	}
	u := NewAuthUsecase(hashPassword(t, "correct horse"), gen)

	token, err := u.Login(context.Background(), "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, 1, gen.Calls)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	gen := &mockJWTGenerator{}
	u := NewAuthUsecase(hashPassword(t, "correct horse"), gen)

	_, err := u.Login(context.Background(), "battery staple")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Zero(t, gen.Calls, "no token for a failed login")
}

func TestAuthUsecase_Login_NoHashConfigured(t *testing.T) {
	t.Parallel()

	u := NewAuthUsecase("", &mockJWTGenerator{})

	_, err := u.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_GeneratorFailure(t *testing.T) {
	t.Parallel()

	gen := &mockJWTGenerator{
		GenerateTokenFunc: func(string) (string, error) {
			return "", errors.New("bad key")
		},
	}
	u := NewAuthUsecase(hashPassword(t, "correct horse"), gen)

	_, err := u.Login(context.Background(), "correct horse")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
