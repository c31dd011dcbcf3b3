package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей платформы
const (
	RoleDonor     = "donor"
	RoleRequester = "requester"
	RoleBloodBank = "bloodbank"
	RoleHospital  = "hospital"
)

// User - учетная запись пользователя. PasswordHash не сериализуется наружу.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile - открытые поля владельца, которые присоединяются к результатам
// геопоиска. Приватные поля (хэш пароля, токены) сюда не попадают.
type PublicProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone"`
}
