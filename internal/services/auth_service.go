package services

import (
	"errors"
	"strings"
	"time"

	"github.com/scrumlab/jedzonko/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrMissingCredentials = errors.New("username and password are required")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) RegisterUser(username string, password string, now time.Time) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
