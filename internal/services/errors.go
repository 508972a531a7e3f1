package services

import (
	"errors"
	"fmt"
)

// Единая таксономия ошибок слоя сервисов. Хендлеры мапят её в статус-коды,
// через границу компонентов ничего не "бросается".
var (
	ErrUnauthorized  = errors.New("unauthorized")              // токен отсутствует/невалиден/чужой
	ErrNotFound      = errors.New("not found")                 // ресурса нет
	ErrAlreadyExists = errors.New("already exists")            // нарушение уникальности при создании
	ErrQuotaExceeded = errors.New("check quota exceeded")      // лимит проверок на аккаунт
	ErrTokenExpired  = errors.New("token has already expired") // extend по мёртвому токену
	ErrIntegrity     = errors.New("referential integrity violated")
)

// ValidationError — поле запроса не прошло проверку. Всегда клиентская 4xx.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CleanupError — каскадное удаление прошло частично: аккаунт уже удалён,
// но часть его проверок удалить не вышло. Осиротевшие записи должен
// подобрать отдельный reconciliation-проход.
type CleanupError struct {
	Deleted int
	Failed  int
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("account removed, but %d of %d checks could not be deleted", e.Failed, e.Deleted+e.Failed)
}
