// Package dashboard реализует HTTP-обработчик дашборда пользователя.
package dashboard

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

// Handler обрабатывает запросы дашборда.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сборки дашборда.
type Service interface {
	Build(ctx context.Context, userID string) (*models.Dashboard, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дашборд пользователя
// @Description Возвращает карточку пользователя, счётчики, синтетические показатели здоровья и последние анализы.
// @Tags Dashboard
// @Produce  json
// @Param id path string true "Идентификатор пользователя"
// @Success 200 {object} map[string]any "Снимок дашборда"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /user/{id}/dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userID")

	dash, err := h.service.Build(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("user not found", slog.String("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to build dashboard", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build dashboard"))
		return
	}

	log.Info("dashboard built", slog.String("user_id", userID))
	render.JSON(w, r, response.OKWithData(dash))
}
