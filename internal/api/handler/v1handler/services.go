package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"net/http"
)

func (h Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	providerID, err := queryID[domain.UserID](r, "providerId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	q := r.URL.Query()
	filter := marketplace.ServiceFilter{
		ProviderID:   providerID,
		Category:     q.Get("category"),
		Municipality: q.Get("municipality"),
	}

	res, err := h.deps.Marketplace.Services.List(r.Context(), auth.PrincipalFrom(r.Context()), filter, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req marketplace.ServiceInput
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	service, err := h.deps.Marketplace.Services.Create(r.Context(), auth.PrincipalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, service)
}

func (h Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ServiceID](r, "serviceID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	service, err := h.deps.Marketplace.Services.Get(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, service)
}

func (h Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ServiceID](r, "serviceID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req marketplace.ServiceUpdate
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	service, err := h.deps.Marketplace.Services.Update(r.Context(), auth.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, service)
}

func (h Handler) SetServiceActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ServiceID](r, "serviceID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	active, err := decodeActive(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	service, err := h.deps.Marketplace.Services.SetActive(r.Context(), auth.PrincipalFrom(r.Context()), id, active)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, service)
}
