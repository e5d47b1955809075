// Package read реализует HTTP-обработчик для получения записи анализа по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/medanalyzer/internal/http/response"
	"github.com/magabrotheeeer/medanalyzer/internal/lib/sl"
	"github.com/magabrotheeeer/medanalyzer/internal/models"
	"github.com/magabrotheeeer/medanalyzer/internal/storage/repository"
)

// Handler обрабатывает запросы на получение записи анализа по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения записи.
type Service interface {
	Read(ctx context.Context, analysisID string) (*models.AnalysisRecord, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить запись анализа
// @Description Возвращает полную запись анализа по её идентификатору.
// @Tags Analyses
// @Produce  json
// @Param id path string true "Идентификатор записи"
// @Success 200 {object} map[string]any "Запись анализа"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /analysis/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	analysisID := chi.URLParam(r, "analysisID")

	rec, err := h.service.Read(r.Context(), analysisID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("analysis not found", slog.String("analysis_id", analysisID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("analysis not found"))
			return
		}
		log.Error("failed to read analysis", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read analysis"))
		return
	}

	log.Info("analysis read", slog.String("analysis_id", rec.AnalysisID))
	render.JSON(w, r, response.OKWithData(rec))
}
