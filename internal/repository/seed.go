package repository

import (
	"parkeo/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// DefaultLots mirrors the launch inventory of the mobile app.
func DefaultLots() []entities.Lot {
	return []entities.Lot{
		{ID: 1, Code: "PKG001", Name: "Central City Parking", Location: "123 Main Street, Downtown", TotalSpaces: 20, AvailableSpaces: 15, ChargingFeePerHour: 2.5},
		{ID: 2, Code: "PKG002", Name: "Metro Mall Parking", Location: "456 Commerce Ave, Eastside", TotalSpaces: 12, AvailableSpaces: 0, ChargingFeePerHour: 3.0},
		{ID: 3, Code: "PKG003", Name: "Riverside Parking", Location: "789 Waterfront Dr, Westside", TotalSpaces: 10, AvailableSpaces: 8, ChargingFeePerHour: 2.0},
		{ID: 4, Code: "PKG004", Name: "North Station Parking", Location: "101 Transit Way, Northside", TotalSpaces: 8, AvailableSpaces: 5, ChargingFeePerHour: 1.5},
		{ID: 5, Code: "PKG005", Name: "Grand Plaza Parking", Location: "202 Plaza Blvd, Southside", TotalSpaces: 10, AvailableSpaces: 10, ChargingFeePerHour: 4.0},
	}
}

// DefaultUsers seeds one regular user and one admin for local runs.
func DefaultUsers() []entities.User {
	return []entities.User{
		{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Role: entities.RoleUser, PasswordHash: mustHash("password123")},
		{ID: 2, FirstName: "Admin", LastName: "User", Email: "admin@example.com", Role: entities.RoleAdmin, PasswordHash: mustHash("admin123")},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
