package domain

import "time"

// Court представляет корт (писту) клуба
// Неизменяем в рамках одной операции планирования
type Court struct {
	ID             int64
	Name           string
	Sport          string // padel, tennis, pickleball
	Surface        string
	Indoor         bool
	BasePriceCents int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
