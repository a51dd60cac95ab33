package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"net/http"
)

func (h Handler) ListPendingBusinesses(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Marketplace.Businesses.ListPending(r.Context(), auth.PrincipalFrom(r.Context()), page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) ModerateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BusinessID](r, "businessID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.Moderation
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	business, err := h.deps.Marketplace.Businesses.Moderate(r.Context(), auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, business)
}

func (h Handler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.UserID](r, "userID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	active, err := decodeActive(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Marketplace.Accounts.SetUserActive(r.Context(), auth.PrincipalFrom(r.Context()), id, active)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, user)
}
