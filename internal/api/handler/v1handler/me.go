package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ConfirmOTPRequest carries the passcode the user received.
type ConfirmOTPRequest struct {
	Code string `json:"code"`
}

func (h Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Marketplace.Accounts.Profile(r.Context(), auth.PrincipalFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, user)
}

func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req marketplace.ProfileUpdate
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Marketplace.Accounts.UpdateProfile(r.Context(), auth.PrincipalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, user)
}

func (h Handler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	method := domain.ContactMethod(chi.URLParam(r, "method"))

	challenge, err := h.deps.Marketplace.Verifications.RequestOTP(r.Context(), auth.PrincipalFrom(r.Context()), method)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, challenge)
}

func (h Handler) ConfirmOTP(w http.ResponseWriter, r *http.Request) {
	var req ConfirmOTPRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	method := domain.ContactMethod(chi.URLParam(r, "method"))

	user, err := h.deps.Marketplace.Verifications.ConfirmOTP(r.Context(), auth.PrincipalFrom(r.Context()), method, req.Code)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, user)
}

func (h Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Marketplace.Jobs.MyApplications(r.Context(), auth.PrincipalFrom(r.Context()), page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}
