package analysis

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	core "github.com/magabrotheeeer/medanalyzer/internal/analysis"
	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

// MockRepository реализует интерфейс analysis.AnalysisRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateAnalysis(ctx context.Context, rec models.AnalysisRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) ReadAnalysis(ctx context.Context, analysisID string) (*models.AnalysisRecord, error) {
	args := m.Called(ctx, analysisID)
	if res := args.Get(0); res != nil {
		return res.(*models.AnalysisRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListAnalysesByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error) {
	args := m.Called(ctx, userID, limit)
	if res := args.Get(0); res != nil {
		return res.([]*models.AnalysisRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCache реализует интерфейс analysis.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func newTestService(repo *MockRepository, cache *MockCache) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	asm := core.NewAssembler(
		func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		rand.New(rand.NewSource(1)),
	)
	return New(repo, cache, asm, logger)
}

func TestAnalyze(t *testing.T) {
	sub := models.Submission{
		UserID:        "uid-1",
		PatientName:   "Иван Иванов",
		PatientAge:    34,
		PatientGender: "male",
		AnalysisType:  "Анализ крови",
	}

	t.Run("успешная обработка заявки", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCache := new(MockCache)
		mockRepo.On("CreateAnalysis", mock.Anything, mock.Anything).Return(nil)
		mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Hour).Return(nil)

		svc := newTestService(mockRepo, mockCache)
		rec, err := svc.Analyze(context.Background(), sub)

		require.NoError(t, err)
		assert.Equal(t, "completed", rec.Status)
		assert.Len(t, rec.Indicators, 4)
		assert.GreaterOrEqual(t, rec.AIConfidence, 85)
		assert.LessOrEqual(t, rec.AIConfidence, 98)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("ошибка хранилища отбрасывает собранную запись", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCache := new(MockCache)
		mockRepo.On("CreateAnalysis", mock.Anything, mock.Anything).Return(errors.New("db error"))

		svc := newTestService(mockRepo, mockCache)
		rec, err := svc.Analyze(context.Background(), sub)

		require.Error(t, err)
		assert.Nil(t, rec)
		// Неудавшаяся запись в кэш не попадает.
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка кэша не ломает обработку", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCache := new(MockCache)
		mockRepo.On("CreateAnalysis", mock.Anything, mock.Anything).Return(nil)
		mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Hour).
			Return(errors.New("redis down"))

		svc := newTestService(mockRepo, mockCache)
		rec, err := svc.Analyze(context.Background(), sub)

		require.NoError(t, err)
		assert.NotNil(t, rec)
	})
}

func TestRead(t *testing.T) {
	stored := &models.AnalysisRecord{
		AnalysisID:   "a-1",
		UserID:       "uid-1",
		AnalysisType: "Анализ крови",
		Status:       "completed",
	}

	t.Run("промах кэша читает хранилище и кэширует", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCache := new(MockCache)
		mockCache.On("Get", mock.Anything, "analysis:a-1", mock.Anything).Return(false, nil)
		mockRepo.On("ReadAnalysis", mock.Anything, "a-1").Return(stored, nil)
		mockCache.On("Set", mock.Anything, "analysis:a-1", stored, time.Hour).Return(nil)

		svc := newTestService(mockRepo, mockCache)
		rec, err := svc.Read(context.Background(), "a-1")

		require.NoError(t, err)
		assert.Equal(t, "a-1", rec.AnalysisID)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("попадание в кэш не трогает хранилище", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCache := new(MockCache)
		mockCache.On("Get", mock.Anything, "analysis:a-1", mock.Anything).
			Run(func(args mock.Arguments) {
				ptr := args.Get(2).(**models.AnalysisRecord)
				*ptr = stored
			}).
			Return(true, nil)

		svc := newTestService(mockRepo, mockCache)
		rec, err := svc.Read(context.Background(), "a-1")

		require.NoError(t, err)
		assert.Equal(t, stored, rec)
		mockRepo.AssertNotCalled(t, "ReadAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("отсутствующая запись возвращает ошибку хранилища", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCache := new(MockCache)
		notFound := errors.New("not found")
		mockCache.On("Get", mock.Anything, "analysis:missing", mock.Anything).Return(false, nil)
		mockRepo.On("ReadAnalysis", mock.Anything, "missing").Return(nil, notFound)

		svc := newTestService(mockRepo, mockCache)
		rec, err := svc.Read(context.Background(), "missing")

		require.ErrorIs(t, err, notFound)
		assert.Nil(t, rec)
	})
}

func TestListByUser(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	records := []*models.AnalysisRecord{
		{AnalysisID: "a-2"},
		{AnalysisID: "a-1"},
	}
	mockRepo.On("ListAnalysesByUser", mock.Anything, "uid-1", 10).Return(records, nil)

	svc := newTestService(mockRepo, mockCache)
	res, err := svc.ListByUser(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Len(t, res, 2)
	mockRepo.AssertExpectations(t)
}
