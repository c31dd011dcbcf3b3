package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenIssuer определяет контракт выпуска bearer-токенов
type TokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

// UserService определяет контракт бизнес-логики учетных записей
type UserService interface {
	Register(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo   UserRepository
	tokens TokenIssuer
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, tokens TokenIssuer, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register создает учетную запись с bcrypt-хэшем пароля
func (s *userService) Register(ctx context.Context, user *models.User, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Register",
		"email":   user.Email,
	})
	log.Info("Registering new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return nil
}

// Login проверяет учетные данные и выпускает JWT
func (s *userService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting login")

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			return "", nil, fmt.Errorf("%w: invalid email or password", models.ErrValidation)
		}
		log.WithError(err).Error("Failed to get user by email")
		return "", nil, fmt.Errorf("service: could not login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return "", nil, fmt.Errorf("%w: invalid email or password", models.ErrValidation)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return "", nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("Login successful")
	return token, user, nil
}

// GetProfile возвращает пользователя по id
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetProfile",
		"user_id": id,
	})

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user by id")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	return user, nil
}
