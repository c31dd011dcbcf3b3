package models

import "errors"

// Сентинельные ошибки доменного уровня. Сервисы оборачивают их через %w,
// хэндлер по errors.Is выбирает HTTP-статус (400/404/502/500).
var (
	// ErrValidation - некорректные входные данные
	ErrValidation = errors.New("validation error")
	// ErrNotFound - сущность или кандидат геокодирования не найдены
	ErrNotFound = errors.New("not found")
	// ErrConflict - нарушение уникальности (повторная регистрация email)
	ErrConflict = errors.New("conflict")
	// ErrProvider - отказ внешнего провайдера (геокодер, матрица расстояний)
	ErrProvider = errors.New("provider error")
	// ErrStorage - отказ слоя хранения
	ErrStorage = errors.New("storage error")
)
