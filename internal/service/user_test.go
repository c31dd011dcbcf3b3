package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestUserService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository, *mocks.MockTokenIssuer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	tokensMock := mocks.NewMockTokenIssuer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewUserService(repoMock, tokensMock, logger)
	return service.(*userService), repoMock, tokensMock
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Name:  "Иван Петров",
		Email: "  Ivan.Petrov@Example.COM ",
		Phone: "+79001234567",
		Role:  models.RoleDonor,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, created *models.User) error {
			// Email нормализуется, пароль хэшируется bcrypt
			assert.Equal(t, "ivan.petrov@example.com", created.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
			return nil
		}).
		Times(1)

	// Действие
	err := service.Register(ctx, user, "secret123")

	// Проверки
	require.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{Email: "ivan@example.com", Role: models.RoleDonor}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(fmt.Errorf("%w: user with email %s already exists", models.ErrConflict, user.Email)).
		Times(1)

	// Действие
	err := service.Register(ctx, user, "secret123")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, repoMock, tokensMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{
		ID:           userID,
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
	}

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "ivan@example.com").
		Return(stored, nil).
		Times(1)

	tokensMock.EXPECT().
		Generate(userID).
		Return("signed.jwt.token", nil).
		Times(1)

	// Действие
	token, user, err := service.Login(ctx, "Ivan@Example.com", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, stored, user)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "ghost@example.com").
		Return(nil, fmt.Errorf("%w: user with email ghost@example.com", models.ErrNotFound)).
		Times(1)

	// Действие
	token, user, err := service.Login(ctx, "ghost@example.com", "secret123")

	// Проверки: неизвестный email неотличим от неверного пароля
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
	}

	// Ожидания: токен не выпускается
	repoMock.EXPECT().
		GetByEmail(ctx, "ivan@example.com").
		Return(stored, nil).
		Times(1)

	// Действие
	token, user, err := service.Login(ctx, "ivan@example.com", "wrong-password")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestGetProfile_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := &models.User{ID: userID, Name: "Иван Петров"}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, userID).
		Return(expected, nil).
		Times(1)

	// Действие
	user, err := service.GetProfile(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}
