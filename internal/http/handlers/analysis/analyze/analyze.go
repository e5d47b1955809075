// Package analyze реализует HTTP-обработчик приёма заявки на анализ.
//
// Handler разбирает multipart-форму, валидирует поля, передаёт заявку сервису
// анализов и возвращает полную сохранённую запись в JSON-формате. Приложенный
// файл не сохраняется, запоминается только его имя.
package analyze

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/medanalyzer/internal/http/response"
	"github.com/magabrotheeeer/medanalyzer/internal/lib/sl"
	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

// Предел размера multipart-формы в памяти.
const maxFormMemory = 10 << 20

// Handler обрабатывает заявки на анализ.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис обработки заявок
	validate *validator.Validate // Валидатор полей формы
}

// Service описывает интерфейс бизнес-логики обработки заявки.
type Service interface {
	Analyze(ctx context.Context, sub models.Submission) (*models.AnalysisRecord, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Принять заявку на анализ
// @Description Принимает multipart-форму с данными пациента и типом анализа, возвращает готовую запись.
// @Tags Analyses
// @Accept  mpfd
// @Produce  json
// @Param user_id formData string true "Идентификатор пользователя"
// @Param patient_name formData string true "Имя пациента"
// @Param patient_age formData int true "Возраст пациента"
// @Param patient_gender formData string true "Пол пациента"
// @Param analysis_type formData string true "Тип анализа свободным текстом"
// @Param symptoms formData string false "Симптомы"
// @Param medications formData string false "Принимаемые препараты"
// @Param file formData file false "Файл с результатами"
// @Success 200 {object} map[string]any "Сохранённая запись анализа"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /analyze [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.analyze"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	patientAge, err := strconv.Atoi(r.FormValue("patient_age"))
	if err != nil {
		log.Error("failed to parse patient age", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("patient_age must be a number"))
		return
	}

	req := models.AnalyzeRequest{
		UserID:        r.FormValue("user_id"),
		PatientName:   r.FormValue("patient_name"),
		PatientAge:    patientAge,
		PatientGender: r.FormValue("patient_gender"),
		AnalysisType:  r.FormValue("analysis_type"),
		Symptoms:      r.FormValue("symptoms"),
		Medications:   r.FormValue("medications"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var fileName *string
	if file, header, err := r.FormFile("file"); err == nil {
		_ = file.Close()
		fileName = &header.Filename
	}

	sub := models.Submission{
		UserID:        req.UserID,
		PatientName:   req.PatientName,
		PatientAge:    req.PatientAge,
		PatientGender: req.PatientGender,
		AnalysisType:  req.AnalysisType,
		Symptoms:      req.Symptoms,
		Medications:   req.Medications,
		FileName:      fileName,
	}

	rec, err := h.service.Analyze(r.Context(), sub)
	if err != nil {
		log.Error("failed to analyze submission", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not process analysis"))
		return
	}

	log.Info("analysis completed", slog.String("analysis_id", rec.AnalysisID))
	render.JSON(w, r, response.OKWithData(rec))
}
