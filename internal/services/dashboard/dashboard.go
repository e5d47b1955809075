// Package dashboard собирает снимок дашборда пользователя: карточку,
// счётчики, синтетические показатели здоровья и последние анализы.
//
// Показатели здоровья иллюстративные: значения разыгрываются на каждый
// запрос внутри фиксированных правдоподобных диапазонов и никак не связаны
// с сохранёнными записями анализов.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

// Количество последних анализов на дашборде.
const recentLimit = 5

// Repository определяет методы хранилища, нужные дашборду.
type Repository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	ListAnalysesByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error)
	CountAnalysesByUser(ctx context.Context, userID string) (int, error)
}

// Service собирает дашборд пользователя.
type Service struct {
	repo Repository
	log  *slog.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// New создает сервис дашборда с внешним источником случайности.
func New(repo Repository, rnd *rand.Rand, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		rnd:  rnd,
		log:  log,
	}
}

// Build возвращает снимок дашборда. Ошибка хранилища о несуществующем
// пользователе пробрасывается как есть (repository.ErrNotFound).
func (s *Service) Build(ctx context.Context, userID string) (*models.Dashboard, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountAnalysesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.ListAnalysesByUser(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.AnalysisSummary, 0, len(recent))
	for _, rec := range recent {
		summaries = append(summaries, models.AnalysisSummary{
			AnalysisID:   rec.AnalysisID,
			AnalysisType: rec.AnalysisType,
			CreatedAt:    rec.CreatedAt,
			AIConfidence: rec.AIConfidence,
		})
	}

	dashboard := &models.Dashboard{
		User: models.UserSummary{
			Name:             user.Name,
			Email:            user.Email,
			SubscriptionPlan: user.SubscriptionPlan,
		},
		Stats: models.DashboardStats{
			TotalAnalyses:        total,
			ActiveTreatments:     s.intn(1, 3),
			UpcomingAppointments: s.intn(0, 2),
		},
		HealthMetrics:  s.generateMetrics(),
		RecentAnalyses: summaries,
	}

	s.log.Info("built dashboard",
		slog.String("user_id", userID),
		slog.Int("total_analyses", total))
	return dashboard, nil
}

// generateMetrics разыгрывает синтетические показатели здоровья
// внутри фиксированных диапазонов.
func (s *Service) generateMetrics() models.HealthMetrics {
	return models.HealthMetrics{
		HeartRate: models.Metric{
			Value:  s.intn(65, 95),
			Status: "normal",
			Trend:  "stable",
		},
		BloodPressure: models.Metric{
			Value:  fmt.Sprintf("%d/%d", s.intn(110, 140), s.intn(70, 90)),
			Status: "normal",
			Trend:  "stable",
		},
		Weight: models.Metric{
			Value:  s.intn(60, 80),
			Status: "normal",
			Trend:  "decreasing",
		},
		RiskScore: models.Metric{
			Value:  s.intn(15, 35),
			Status: "low",
			Trend:  "improving",
		},
	}
}

// intn возвращает равномерное целое из отрезка [lo, hi].
// rand.Rand не потокобезопасен, обращения сериализуются.
func (s *Service) intn(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.Intn(hi-lo+1)
}
