package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"net/http"
)

func (h Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BusinessID](r, "businessID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Marketplace.Reviews.List(r.Context(), id, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BusinessID](r, "businessID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.ReviewInput
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	review, err := h.deps.Marketplace.Reviews.Create(r.Context(), auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, review)
}

func (h Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ReviewID](r, "reviewID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Marketplace.Reviews.Delete(r.Context(), auth.PrincipalFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
