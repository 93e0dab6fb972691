package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/prepkit/assessment-service/internal/models"
)

func (h *Handler) SubmitContest(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitContestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	code, err := h.recordService.SubmitContest(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, models.SubmitContestResponse{ContestCode: code})
}

func (h *Handler) SubmitMcq(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitMcqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	code, err := h.recordService.SubmitMcq(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, models.SubmitMcqResponse{TestCode: code})
}

func (h *Handler) SubmitInterview(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	code, err := h.recordService.SubmitInterview(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, models.SubmitInterviewResponse{InterviewCode: code})
}
