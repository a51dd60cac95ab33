package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"net/http"
	"strconv"
)

// MarkReadRequest marks the listed notifications, or all of them, as read.
type MarkReadRequest struct {
	IDs []domain.NotificationID `json:"ids"`
	All bool                    `json:"all"`
}

// CountResponse carries a counter.
type CountResponse struct {
	Count int64 `json:"count"`
}

func (h Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var unreadOnly bool
	if raw := r.URL.Query().Get("unread"); raw != "" {
		if unreadOnly, err = strconv.ParseBool(raw); err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "unread must be a boolean"))

			return
		}
	}

	res, err := h.deps.Marketplace.Notifications.List(r.Context(), auth.PrincipalFrom(r.Context()), unreadOnly, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeList(w, res.Items, res.NextCursor)
}

func (h Handler) UnreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.deps.Marketplace.Notifications.UnreadCount(r.Context(), auth.PrincipalFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h Handler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	var req MarkReadRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if req.All && len(req.IDs) > 0 {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "set either ids or all"))

		return
	}

	p := auth.PrincipalFrom(r.Context())
	var (
		count int64
		err   error
	)
	if req.All {
		count, err = h.deps.Marketplace.Notifications.MarkAllRead(r.Context(), p)
	} else {
		count, err = h.deps.Marketplace.Notifications.MarkRead(r.Context(), p, req.IDs)
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}
