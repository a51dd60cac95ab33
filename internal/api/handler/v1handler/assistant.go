package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"net/http"
	"strconv"
)

// ChatRequest is one user turn.
type ChatRequest struct {
	Message string `json:"message"`
}

// ResumeAnalysisRequest scores a resume against a posting.
type ResumeAnalysisRequest struct {
	JobID      domain.JobID `json:"jobId"`
	ResumeText string       `json:"resumeText"`
}

func (h Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	reply, err := h.deps.Assistant.Chat(r.Context(), auth.PrincipalFrom(r.Context()), req.Message)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, reply)
}

func (h Handler) ResetChat(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Assistant.ResetChat(r.Context(), auth.PrincipalFrom(r.Context())); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) AnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeAnalysisRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if req.JobID == (domain.JobID{}) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "jobId is required"))

		return
	}

	analysis, err := h.deps.Assistant.AnalyzeResume(r.Context(), auth.PrincipalFrom(r.Context()), req.JobID, req.ResumeText)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, analysis)
}

func (h Handler) SuggestLocations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var limit int
	if raw := q.Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer"))

			return
		}
	}

	suggestions, err := h.deps.Assistant.SuggestLocations(r.Context(), q.Get("q"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if suggestions == nil {
		suggestions = []domain.LocationSuggestion{}
	}

	controller.WriteJSON(w, http.StatusOK, suggestions)
}
