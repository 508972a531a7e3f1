package models

import "time"

// Token — opaque bearer-токен, id одновременно ключ в хранилище и креденшел.
type Token struct {
	ID      string    `json:"id"`
	Phone   string    `json:"phone"` // владелец; обратная ссылка, не владение
	Expires time.Time `json:"expires"`
}

// Valid — токен годен строго до Expires.
func (t *Token) Valid(now time.Time) bool {
	return t.Expires.After(now)
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ExtendRequest повторяет протокол оригинального API: extend обязан быть true.
type ExtendRequest struct {
	Extend bool `json:"extend"`
}
