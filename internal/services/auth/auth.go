// Package auth содержит бизнес-логику регистрации и входа пользователей.
//
// Пароли хранятся и сравниваются в открытом виде. Проверка занятости
// email выполняется чтением перед вставкой и не является транзакционной.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/medanalyzer/internal/models"
	"github.com/magabrotheeeer/medanalyzer/internal/storage/repository"
)

// ErrEmailTaken возвращается при попытке регистрации на занятый email.
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrInvalidCredentials возвращается при несовпадении email или пароля.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository определяет методы хранилища, нужные сервису аутентификации.
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service реализует регистрацию и вход.
type Service struct {
	repo UserRepository
	now  func() time.Time
	log  *slog.Logger
}

// New создает сервис аутентификации с внешним источником времени.
func New(repo UserRepository, now func() time.Time, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		now:  now,
		log:  log,
	}
}

// Register создает нового пользователя и возвращает его идентификатор.
// Email должен быть свободен, иначе возвращается ErrEmailTaken.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	const op = "services.auth.Register"

	_, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		UserID:           uuid.NewString(),
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Age:              req.Age,
		Gender:           req.Gender,
		CreatedAt:        s.now(),
		SubscriptionPlan: "basic",
	}

	if err := s.repo.RegisterUser(ctx, user); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("registered new user", slog.String("user_id", user.UserID))
	return user.UserID, nil
}

// Login проверяет учётные данные и возвращает пользователя.
// Отсутствующий email и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	const op = "services.auth.Login"

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.Password != req.Password {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	s.log.Info("login success", slog.String("user_id", user.UserID))
	return user, nil
}
