package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"net/http"
)

func (h Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	ownerID, err := queryID[domain.UserID](r, "ownerId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	q := r.URL.Query()
	filter := marketplace.BusinessFilter{
		Municipality: q.Get("municipality"),
		Category:     q.Get("category"),
		OwnerID:      ownerID,
		Status:       domain.BusinessStatus(q.Get("status")),
	}

	res, err := h.deps.Marketplace.Businesses.List(r.Context(), auth.PrincipalFrom(r.Context()), filter, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	var req marketplace.BusinessInput
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	business, err := h.deps.Marketplace.Businesses.Register(r.Context(), auth.PrincipalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, business)
}

func (h Handler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BusinessID](r, "businessID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	business, err := h.deps.Marketplace.Businesses.Get(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, business)
}

func (h Handler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BusinessID](r, "businessID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.BusinessUpdate
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	business, err := h.deps.Marketplace.Businesses.Update(r.Context(), auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, business)
}

func (h Handler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BusinessID](r, "businessID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Marketplace.Businesses.Delete(r.Context(), auth.PrincipalFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
