package services

import (
	"errors"
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo  *repository.UserRepository
	validator *validator.Validate
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: validator.New(),
	}
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=administrador consulta"`
}

type UpdateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Role   string `json:"role" validate:"omitempty,oneof=administrador consulta"`
	Active *bool  `json:"active"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, errors.New("username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:  req.Username,
		Password:  string(hashed),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.userRepo.Create(user)
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.userRepo.FindAll()
}

func (s *UserService) UpdateUser(id string, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	return s.userRepo.Update(id, user)
}

func (s *UserService) ChangePassword(id string, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	_, err = s.userRepo.Update(id, user)
	return err
}

func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
