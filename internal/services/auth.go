package services

import (
	"errors"
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"
	"tvar-backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtUtil   *jwt.JWTUtil
	validator *validator.Validate
}

func NewAuthService(userRepo *repository.UserRepository, jwtUtil *jwt.JWTUtil) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtUtil:   jwtUtil,
		validator: validator.New(),
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, errors.New("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if _, err := s.userRepo.Update(user.ID.Hex(), user); err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

// RefreshToken issues a fresh token for an already-authenticated user.
func (s *AuthService) RefreshToken(userID string) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if !user.Active {
		return "", errors.New("account is disabled")
	}

	return s.jwtUtil.GenerateToken(user.ID.Hex(), user.Username, user.Role)
}

func (s *AuthService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}
