// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tick_store/internal/feature/auth/domain"
)

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given subject.
	GenerateToken(subject string) (string, error)
}

// operatorSubject is the claim subject for the single store operator.
const operatorSubject = "operator"

// dummyHash keeps the bcrypt comparison running even when no operator hash
// is configured, so a missing hash is not distinguishable by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase authenticates the store operator against a configured
// bcrypt hash.
type authUsecase struct {
	operatorHash string
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase. operatorHash is the bcrypt hash
// of the operator password from configuration; an empty hash rejects every
// login.
func NewAuthUsecase(operatorHash string, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		operatorHash: operatorHash,
		jwtGenerator: jwtGenerator,
	}
}

// Login verifies the operator password and returns a signed JWT on success.
// The bcrypt comparison always runs, against a dummy hash when none is
// configured, to avoid leaking configuration state through timing.
func (u *authUsecase) Login(ctx context.Context, password string) (string, error) {
	hash := u.operatorHash
	configured := hash != ""
	if !configured {
		hash = dummyHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if !configured || compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(operatorSubject)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
