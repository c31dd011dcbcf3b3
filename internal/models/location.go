package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы геоточек
const (
	KindDonor     = "donor"
	KindBloodBank = "bloodbank"
	KindHospital  = "hospital"
)

// ValidKind проверяет, что тип точки входит в допустимый перечень
func ValidKind(kind string) bool {
	switch kind {
	case KindDonor, KindBloodBank, KindHospital:
		return true
	}
	return false
}

// Location - геоточка пользователя (донор/банк крови/больница).
// Ровно одна запись на пользователя, повторная регистрация обновляет её.
type Location struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Kind        string    `json:"kind"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Address     string    `json:"address"`
	IsAvailable bool      `json:"is_available"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DistanceInfo - дорожное расстояние и время в пути от провайдера маршрутов.
// Значения отдаются как есть, без нормализации единиц.
type DistanceInfo struct {
	Meters  float64 `json:"meters"`
	Seconds float64 `json:"seconds"`
}

// NearbyMatch - результат геопоиска: точка, открытый профиль владельца
// и дорожное расстояние до неё.
type NearbyMatch struct {
	Location Location      `json:"location"`
	Owner    PublicProfile `json:"owner"`
	Distance DistanceInfo  `json:"distance"`
}

// BloodBank - элемент публичного списка банков крови (точка + имя/телефон владельца)
type BloodBank struct {
	Location Location      `json:"location"`
	Owner    PublicProfile `json:"owner"`
}
