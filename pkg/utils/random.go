package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей).
// Используется для идентификации клиентских подключений.
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// RandRange возвращает целое в диапазоне [min, max] включительно.
func RandRange(rng *mrand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// Chance возвращает true с вероятностью p (0..1).
func Chance(rng *mrand.Rand, p float64) bool {
	return rng.Float64() < p
}
