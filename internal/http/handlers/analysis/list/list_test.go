package list

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
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListByUser(ctx context.Context, userID string) ([]*models.AnalysisRecord, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.([]*models.AnalysisRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "список записей пользователя",
			userID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, "uid-1").Return([]*models.AnalysisRecord{
					{AnalysisID: "a-2", AnalysisType: "Рентген"},
					{AnalysisID: "a-1", AnalysisType: "Анализ крови"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"analysis_id":"a-2"`,
		},
		{
			name:   "пустой список для пользователя без записей",
			userID: "uid-2",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, "uid-2").
					Return([]*models.AnalysisRecord{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"analyses"`,
		},
		{
			name:   "ошибка сервиса",
			userID: "uid-3",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, "uid-3").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not list analyses`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/user/"+tt.userID+"/analyses", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
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
