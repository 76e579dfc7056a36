package api

import "parkeo/internal/entities"

// Entry
type EntryRequest struct {
	ParkingCode string `json:"parking_code" validate:"required"`
	PlateNumber string `json:"plate_number" validate:"required,min=2,max=16"`
}

// Auth
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type AuthResponse struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}
