package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/medanalyzer/internal/models"
	"github.com/magabrotheeeer/medanalyzer/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, analysisID string) (*models.AnalysisRecord, error) {
	args := m.Called(ctx, analysisID)
	if res := args.Get(0); res != nil {
		return res.(*models.AnalysisRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		analysisID     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "успешное чтение записи",
			analysisID: "a-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "a-1").Return(&models.AnalysisRecord{
					AnalysisID:   "a-1",
					UserID:       "uid-1",
					AnalysisType: "Анализ крови",
					Status:       "completed",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"analysis_id":"a-1"`,
		},
		{
			name:       "отсутствующая запись",
			analysisID: "missing",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "missing").
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `analysis not found`,
		},
		{
			name:       "ошибка сервиса",
			analysisID: "a-2",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "a-2").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not read analysis`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/analysis/"+tt.analysisID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("analysisID", tt.analysisID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
