package utils

import (
	"crypto/rand"
	"math/big"
)

// Алфавит opaque-идентификаторов (токены, проверки).
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewOpaqueID возвращает случайную строку фиксированной длины из idAlphabet.
// Коллизии не дедуплицируются — при 36^20 вариантов вероятность пренебрежима.
func NewOpaqueID(length int) (string, error) {
	if length <= 0 {
		length = 20 // длина по умолчанию, как у токенов
	}
	max := big.NewInt(int64(len(idAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b), nil
}
