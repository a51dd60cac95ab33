package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"net/http"
)

// ActiveRequest opens or closes a listing, or enables or disables an account.
type ActiveRequest struct {
	Active *bool `json:"active"`
}

func decodeActive(r *http.Request) (bool, error) {
	var req ActiveRequest
	if err := decode(r, &req); err != nil {
		return false, err
	}
	if req.Active == nil {
		return false, serrors.With(serrors.ErrBadRequest, "active is required")
	}

	return *req.Active, nil
}

func (h Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	businessID, err := queryID[domain.BusinessID](r, "businessId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	q := r.URL.Query()
	filter := marketplace.JobFilter{
		BusinessID:   businessID,
		Municipality: q.Get("municipality"),
		Type:         domain.JobType(q.Get("type")),
	}

	res, err := h.deps.Marketplace.Jobs.List(r.Context(), auth.PrincipalFrom(r.Context()), filter, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) PostJob(w http.ResponseWriter, r *http.Request) {
	var req marketplace.JobInput
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Marketplace.Jobs.Post(r.Context(), auth.PrincipalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, job)
}

func (h Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.JobID](r, "jobID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Marketplace.Jobs.Get(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, job)
}

func (h Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.JobID](r, "jobID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.JobUpdate
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Marketplace.Jobs.Update(r.Context(), auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, job)
}

func (h Handler) SetJobActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.JobID](r, "jobID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	active, err := decodeActive(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Marketplace.Jobs.SetActive(r.Context(), auth.PrincipalFrom(r.Context()), id, active)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, job)
}

func (h Handler) Apply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.JobID](r, "jobID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.ApplicationInput
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	application, err := h.deps.Marketplace.Jobs.Apply(r.Context(), auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, application)
}

func (h Handler) JobApplications(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.JobID](r, "jobID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Marketplace.Jobs.Applications(r.Context(), auth.PrincipalFrom(r.Context()), id, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ApplicationID](r, "applicationID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.ApplicationStatusUpdate
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	application, err := h.deps.Marketplace.Jobs.UpdateApplicationStatus(r.Context(),
		auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, application)
}

func (h Handler) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ApplicationID](r, "applicationID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	application, err := h.deps.Marketplace.Jobs.Withdraw(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, application)
}
