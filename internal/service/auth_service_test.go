package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
	"parkeo/internal/repository"
)

func newTestAuthService() AuthService {
	return NewAuthService(repository.NewUserStore(repository.DefaultUsers()), "test-secret", time.Hour)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService()

	user, token, err := svc.Login("john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, entities.RoleUser, user.Role)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, entities.RoleUser, claims.Role)
}

func TestLoginBadPassword(t *testing.T) {
	svc := newTestAuthService()

	_, _, err := svc.Login("john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginCarriesRole(t *testing.T) {
	svc := newTestAuthService()

	_, token, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, claims.Role)
}

func TestRegister(t *testing.T) {
	svc := newTestAuthService()

	user, token, err := svc.Register("Jane", "Roe", "jane@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleUser, user.Role, "registration never grants admin")
	assert.NotEmpty(t, user.PasswordHash)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// The new account can log in.
	_, _, err = svc.Login("jane@example.com", "s3cretpass")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()

	_, _, err := svc.Register("John", "Again", "john@example.com", "whatever1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsForeignSecret(t *testing.T) {
	other := NewAuthService(repository.NewUserStore(repository.DefaultUsers()), "other-secret", time.Hour)
	_, token, err := other.Login("john@example.com", "password123")
	require.NoError(t, err)

	svc := newTestAuthService()
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
