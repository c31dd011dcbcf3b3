package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	// Подготовка
	manager := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	// Действие
	token, err := manager.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := manager.Parse(token)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	// Подготовка
	issuer := NewTokenManager("issuer-secret", time.Hour)
	verifier := NewTokenManager("other-secret", time.Hour)

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	// Действие
	parsedID, err := verifier.Parse(token)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	// Подготовка: токен с отрицательным сроком жизни уже истек
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Generate(uuid.New())
	require.NoError(t, err)

	// Действие
	parsedID, err := manager.Parse(token)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	// Подготовка
	manager := NewTokenManager("test-secret", time.Hour)

	// Действие
	parsedID, err := manager.Parse("not.a.token")

	// Проверки
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}
