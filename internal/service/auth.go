package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bodyai/backend/internal/models"
)

// bcryptCost matches the cost factor the product has always used for stored
// hashes.
const bcryptCost = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration, login and JWT issuance.
type AuthService struct {
	users     UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register validates the input, rejects duplicate emails, hashes the password
// and stores the user. The returned user has the password stripped.
func (s *AuthService) Register(ctx context.Context, dto models.CreateUserDTO) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if !emailPattern.MatchString(email) {
		return nil, validationErrorf("invalid email format")
	}
	if len(dto.Password) < 8 {
		return nil, validationErrorf("password must be at least 8 characters long")
	}
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, validationErrorf("name is required")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
	})
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Login authenticates a user and returns it alongside a signed token. Every
// failure mode collapses into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses a bearer token and returns the user id it carries.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid token claims")
	}
	return userID, nil
}
