package httpd

import (
	"net/http"
)

func (h *Handler) GetTotalStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	total, err := h.analyticsService.TotalStudents(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"total_students": total,
	})
}

func (h *Handler) GetTotalContests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	total, err := h.analyticsService.TotalDistinctContestCodes(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"total_contests": total,
	})
}

func (h *Handler) GetContestParticipants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participants, err := h.analyticsService.ContestParticipants(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"contest_participants": participants,
	})
}

func (h *Handler) GetContestParticipationPercentage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp, err := h.analyticsService.ContestParticipationPercentage(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, resp)
}

func (h *Handler) GetMonthlyContestParticipation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.analyticsService.MonthlyContestParticipation(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, entries)
}

func (h *Handler) GetWeeklyContestParticipation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.analyticsService.WeeklyContestParticipation(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, entries)
}

func (h *Handler) GetDriveParticipation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.analyticsService.DriveParticipation(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, entries)
}

func (h *Handler) GetStudentSummaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summaries, err := h.analyticsService.StudentSummaries(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, summaries)
}
