package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prepkit/assessment-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	studentService   service.StudentService
	recordService    service.RecordService
	analyticsService service.AnalyticsService
	logger           zerolog.Logger
}

func NewHandler(
	studentService service.StudentService,
	recordService service.RecordService,
	analyticsService service.AnalyticsService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		studentService:   studentService,
		recordService:    recordService,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/students", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Get("/profile/{email}", h.GetStudentProfile)
		})

		api.Route("/submissions", func(r chi.Router) {
			r.Post("/contest", h.SubmitContest)
			r.Post("/mcq", h.SubmitMcq)
			r.Post("/interview", h.SubmitInterview)
		})

		api.Route("/stats", func(r chi.Router) {
			r.Get("/total-students", h.GetTotalStudents)
			r.Get("/total-contests", h.GetTotalContests)
			r.Get("/contest-participants", h.GetContestParticipants)
			r.Get("/contest-percentage", h.GetContestParticipationPercentage)
			r.Get("/monthly-contest-participation", h.GetMonthlyContestParticipation)
			r.Get("/weekly-contest-participation", h.GetWeeklyContestParticipation)
			r.Get("/drive-participation", h.GetDriveParticipation)
			r.Get("/student-summaries", h.GetStudentSummaries)
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "assessment-service",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, http.StatusOK, response)
}
