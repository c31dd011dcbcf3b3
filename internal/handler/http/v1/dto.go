package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=5,max=20"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=donor requester bloodbank hospital"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO с открытыми полями пользователя
// @Description DTO с открытыми полями пользователя
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse DTO для ответа на вход: токен и профиль
// @Description DTO для ответа на вход
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SaveLocationRequest DTO для регистрации геоточки
// @Description DTO для регистрации геоточки
type SaveLocationRequest struct {
	Address     string `json:"address" validate:"required,min=3"`
	Type        string `json:"type" validate:"required,oneof=donor bloodbank hospital"`
	IsAvailable bool   `json:"is_available"`
}

// LocationResponse DTO для ответа с геоточкой
// @Description DTO для ответа с геоточкой
type LocationResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Address     string    `json:"address"`
	IsAvailable bool      `json:"is_available"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerResponse DTO с открытым профилем владельца точки
// @Description DTO с открытым профилем владельца точки
type OwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone"`
}

// DistanceResponse DTO с дорожным расстоянием от провайдера маршрутов
// @Description DTO с дорожным расстоянием
type DistanceResponse struct {
	Meters  float64 `json:"meters"`
	Seconds float64 `json:"seconds"`
}

// NearbyMatchResponse DTO для результата геопоиска
// @Description DTO для результата геопоиска
type NearbyMatchResponse struct {
	Location LocationResponse `json:"location"`
	Owner    OwnerResponse    `json:"owner"`
	Distance DistanceResponse `json:"distance"`
}

// BloodBankResponse DTO для элемента списка банков крови
// @Description DTO для элемента списка банков крови
type BloodBankResponse struct {
	Location LocationResponse `json:"location"`
	Owner    OwnerResponse    `json:"owner"`
}

// CreateBloodRequestRequest DTO для создания заявки на кровь
// @Description DTO для создания заявки на кровь
type CreateBloodRequestRequest struct {
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Units      int    `json:"units" validate:"required,gt=0"`
	Urgency    string `json:"urgency" validate:"required,oneof=low normal high critical"`
	Address    string `json:"address,omitempty"`
}

// UpdateBloodRequestRequest DTO для обновления заявки на кровь
// @Description DTO для обновления заявки на кровь
type UpdateBloodRequestRequest struct {
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Units      int    `json:"units" validate:"required,gt=0"`
	Urgency    string `json:"urgency" validate:"required,oneof=low normal high critical"`
	Address    string `json:"address,omitempty"`
	Status     string `json:"status" validate:"required,oneof=open fulfilled cancelled"`
}

// BloodRequestResponse DTO для ответа с заявкой на кровь
// @Description DTO для ответа с заявкой на кровь
type BloodRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	BloodGroup  string    `json:"blood_group"`
	Units       int       `json:"units"`
	Urgency     string    `json:"urgency"`
	Status      string    `json:"status"`
	Address     string    `json:"address,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentResponse DTO с метаданными загруженного документа
// @Description DTO с метаданными загруженного документа
type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
