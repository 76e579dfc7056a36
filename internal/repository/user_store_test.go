package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
)

func TestUserStoreLookups(t *testing.T) {
	store := NewUserStore(DefaultUsers())

	user, err := store.GetByEmail("John@Example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, entities.RoleUser, user.Role)

	_, err = store.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.GetByID(99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserStoreCreate(t *testing.T) {
	store := NewUserStore(DefaultUsers())

	created, err := store.Create(entities.User{
		FirstName: "Jane",
		LastName:  "Roe",
		Email:     "jane@example.com",
		Role:      entities.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID, "IDs continue past the seeded users")

	_, err = store.Create(entities.User{Email: "JANE@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}
