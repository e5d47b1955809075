package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/medanalyzer/internal/http/response"
	"github.com/magabrotheeeer/medanalyzer/internal/lib/sl"
	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ListByUser(ctx context.Context, userID string) ([]*models.AnalysisRecord, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userID")

	res, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list analyses", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list analyses"))
		return
	}

	log.Info("listed analyses", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"analyses": res,
	}))
}
