// Package analysis содержит бизнес-логику обработки заявок на анализ:
// классификация типа, сборка записи, сохранение и чтение с кэшированием.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	core "github.com/magabrotheeeer/medanalyzer/internal/analysis"
	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

// Количество записей в списке анализов пользователя.
const listLimit = 10

// AnalysisRepository определяет методы хранилища для записей анализов.
type AnalysisRepository interface {
	CreateAnalysis(ctx context.Context, rec models.AnalysisRecord) error
	ReadAnalysis(ctx context.Context, analysisID string) (*models.AnalysisRecord, error)
	ListAnalysesByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error)
}

// Cache описывает методы для кэширования готовых записей.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service реализует сценарии работы с анализами.
type Service struct {
	repo      AnalysisRepository
	cache     Cache
	assembler *core.Assembler
	log       *slog.Logger
}

// New создает сервис анализов.
func New(repo AnalysisRepository, cache Cache, assembler *core.Assembler, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		assembler: assembler,
		log:       log,
	}
}

// Analyze классифицирует заявку, собирает запись, сохраняет её и возвращает.
// При ошибке записи в хранилище собранная запись отбрасывается целиком,
// повторов нет.
func (s *Service) Analyze(ctx context.Context, sub models.Submission) (*models.AnalysisRecord, error) {
	category := core.Classify(sub.AnalysisType)
	rec := s.assembler.Assemble(sub, category)

	if err := s.repo.CreateAnalysis(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("created new analysis",
		slog.String("analysis_id", rec.AnalysisID),
		slog.String("category", string(category)))

	cacheKey := analysisKey(rec.AnalysisID)
	if err := s.cache.Set(ctx, cacheKey, rec, time.Hour); err != nil {
		s.log.Warn("failed to cache analysis", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &rec, nil
}

// Read возвращает запись анализа по идентификатору, используя кэш или хранилище.
func (s *Service) Read(ctx context.Context, analysisID string) (*models.AnalysisRecord, error) {
	var result *models.AnalysisRecord
	cacheKey := analysisKey(analysisID)
	found, err := s.cache.Get(ctx, cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadAnalysis(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// ListByUser возвращает до 10 последних записей пользователя, новые первыми.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*models.AnalysisRecord, error) {
	return s.repo.ListAnalysesByUser(ctx, userID, listLimit)
}

func analysisKey(analysisID string) string {
	return fmt.Sprintf("analysis:%s", analysisID)
}
