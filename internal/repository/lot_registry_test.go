package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
)

func testLots() []entities.Lot {
	return []entities.Lot{
		{ID: 1, Code: "PKG001", Name: "Central City Parking", TotalSpaces: 3, AvailableSpaces: 2, ChargingFeePerHour: 2.5},
		{ID: 2, Code: "PKG002", Name: "Metro Mall Parking", TotalSpaces: 2, AvailableSpaces: 0, ChargingFeePerHour: 3.0},
	}
}

func TestListKeepsCreationOrder(t *testing.T) {
	reg := NewLotRegistry(testLots())

	lots := reg.List()
	require.Len(t, lots, 2)
	assert.Equal(t, "PKG001", lots[0].Code)
	assert.Equal(t, "PKG002", lots[1].Code)
}

func TestListReturnsCopies(t *testing.T) {
	reg := NewLotRegistry(testLots())

	lots := reg.List()
	lots[0].AvailableSpaces = 99

	again, err := reg.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 2, again.AvailableSpaces)
}

func TestGetByCode(t *testing.T) {
	reg := NewLotRegistry(testLots())

	lot, err := reg.GetByCode("PKG002")
	require.NoError(t, err)
	assert.Equal(t, 2, lot.ID)

	_, err = reg.GetByCode("PKG999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	reg := NewLotRegistry(testLots())

	_, err := reg.GetByID(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReserveOne(t *testing.T) {
	reg := NewLotRegistry(testLots())

	require.NoError(t, reg.ReserveOne(1))
	require.NoError(t, reg.ReserveOne(1))

	lot, err := reg.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 0, lot.AvailableSpaces)

	err = reg.ReserveOne(1)
	assert.ErrorIs(t, err, apperrors.ErrSpacesExhausted)

	lot, err = reg.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 0, lot.AvailableSpaces, "failed reserve must not touch the counter")
}

func TestReserveOneExhaustedLot(t *testing.T) {
	reg := NewLotRegistry(testLots())

	err := reg.ReserveOne(2)
	assert.ErrorIs(t, err, apperrors.ErrSpacesExhausted)
}

func TestReserveOneUnknownLot(t *testing.T) {
	reg := NewLotRegistry(testLots())

	err := reg.ReserveOne(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReleaseOne(t *testing.T) {
	reg := NewLotRegistry(testLots())

	require.NoError(t, reg.ReserveOne(1))
	require.NoError(t, reg.ReleaseOne(1))

	lot, err := reg.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 2, lot.AvailableSpaces)
}

func TestReleaseOneBoundedByTotal(t *testing.T) {
	reg := NewLotRegistry(testLots())

	require.NoError(t, reg.ReleaseOne(1))

	err := reg.ReleaseOne(1)
	require.Error(t, err)

	lot, err := reg.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, lot.AvailableSpaces)
}
