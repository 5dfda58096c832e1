package service

import (
	"errors"
	"fmt"

	"accounts-be/internal/jwt"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
	"accounts-be/internal/security"
)

// ErrEmailExists is returned when registering with an email that is taken
var ErrEmailExists = errors.New("email already registered")

// ErrInvalidCredentials covers both "no such email" and "wrong password"
// during login. The two cases are deliberately indistinguishable so a caller
// cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     *security.PasswordHasher
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher *security.PasswordHasher, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Register creates a new user account and logs it in immediately
func (s *authService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	// Check if the email is already taken
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	// Hash password
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// Create user; a concurrent registration can slip past the check above,
	// in which case the unique constraint reports the same conflict
	user, err := s.userRepo.Create(req.Email, passwordHash, req.Name)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, ErrEmailExists
	}
	if err != nil {
		return nil, err
	}

	// Issue token so the user can call protected routes right away
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return models.NewAuthResponse(token, user), nil
}

// Login authenticates a user and returns user info with a fresh token
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	// Only a missing user is a credential failure; store outages propagate
	// so the caller maps them to a 5xx instead of a 401
	user, err := s.userRepo.FindByEmail(req.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return models.NewAuthResponse(token, user), nil
}
