package service

import (
	"errors"
	"fmt"
	"time"

	"parkeo/internal/entities"
	"parkeo/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenClaims is what the middleware needs from a verified bearer token.
type TokenClaims struct {
	UserID int
	Email  string
	Role   string
}

type AuthService interface {
	Login(email, password string) (entities.User, string, error)
	Register(firstName, lastName, email, password string) (entities.User, string, error)
	VerifyToken(token string) (TokenClaims, error)
}

type authService struct {
	users     *repository.UserStore
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(users *repository.UserStore, jwtSecret string, jwtExpiry time.Duration) AuthService {
	return &authService{users: users, jwtSecret: []byte(jwtSecret), jwtExpiry: jwtExpiry}
}

func (s *authService) Login(email, password string) (entities.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

func (s *authService) Register(firstName, lastName, email, password string) (entities.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, "", err
	}

	user, err := s.users.Create(entities.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Role:         entities.RoleUser,
		PasswordHash: string(hash),
	})
	if err != nil {
		return entities.User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

func (s *authService) VerifyToken(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidCredentials
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return TokenClaims{}, ErrInvalidCredentials
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return TokenClaims{UserID: int(userID), Email: email, Role: role}, nil
}

func (s *authService) issueToken(user entities.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
