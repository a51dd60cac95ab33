// Package v1handler implements the /v1 JSON API on a chi router.
package v1handler

import (
	"catconnect/internal/assistant"
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps are the services behind the API.
type Deps struct {
	Marketplace *marketplace.Marketplace
	Assistant   *assistant.Assistant
	Issuer      *auth.Issuer
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatus pairs an ErrorResponse with its HTTP status.
type ErrorStatus struct {
	StatusCode int
	Response   ErrorResponse
}

// ListResponse is the body of every paginated listing.
type ListResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
}

// NewError maps err to the response sent to the client. Errors without a
// semantic kind are logged and hidden behind a generic internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	kind := serrors.KindOf(err)
	if kind == nil {
		// a bare kind returned as the error itself
		_ = errors.As(err, &kind)
	}
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	if kind == nil || kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatus{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	message := defaultMessages[kind]
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		message = sErr.Message()
	}

	return &ErrorStatus{
		StatusCode: serrors.HTTPStatus(kind),
		Response:   ErrorResponse{Code: kind.Error(), Message: message},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	controller.WriteJSON(w, res.StatusCode, res.Response)
}

// decode reads the JSON body of r into dst.
func decode(r *http.Request, dst any) error {
	if err := controller.DecodeJSON(r, dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body: %s", err.Error())
	}

	return nil
}

func pathID[T ~[16]byte](r *http.Request, name string) (T, error) {
	id, err := domain.ParseID[T](chi.URLParam(r, name))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

func queryID[T ~[16]byte](r *http.Request, name string) (*T, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	id, err := domain.ParseID[T](raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return &id, nil
}

func pageRequest(r *http.Request) (marketplace.PageRequest, error) {
	q := r.URL.Query()
	page := marketplace.PageRequest{Cursor: q.Get("cursor")}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || limit == 0 {
			return page, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
		}
		page.Limit = uint(limit)
	}

	return page, nil
}

func writeList[T any](w http.ResponseWriter, items []T, next *storage.Cursor) {
	if items == nil {
		items = []T{}
	}
	res := ListResponse[T]{Items: items}
	if next != nil {
		cursor := next.String()
		res.NextCursor = &cursor
	}
	controller.WriteJSON(w, http.StatusOK, res)
}
