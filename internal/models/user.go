// Package models содержит доменные структуры сервиса медицинских анализов,
// а также вспомогательные типы для приёма данных из HTTP-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя сервиса.
// Пароль хранится в открытом виде, наружу это поле
// никогда не отдаётся (см. Public).
type User struct {
	UserID           string    `json:"user_id"`           // Уникальный идентификатор пользователя
	Name             string    `json:"name"`              // Имя пользователя
	Email            string    `json:"email"`             // Электронная почта (уникальная)
	Password         string    `json:"password"`          // Пароль в открытом виде
	Age              *int      `json:"age"`               // Возраст (опционально)
	Gender           *string   `json:"gender"`            // Пол (опционально)
	CreatedAt        time.Time `json:"created_at"`        // Дата регистрации
	SubscriptionPlan string    `json:"subscription_plan"` // Тарифный план, по умолчанию basic
}

// PublicUser — представление пользователя без учётных данных.
type PublicUser struct {
	UserID           string `json:"user_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// Public возвращает публичные поля пользователя, пароль никогда не попадает в ответ.
func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:           u.UserID,
		Name:             u.Name,
		Email:            u.Email,
		SubscriptionPlan: u.SubscriptionPlan,
	}
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender   *string `json:"gender,omitempty"`
}

// LoginRequest используется для приёма учётных данных из JSON-запроса.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
