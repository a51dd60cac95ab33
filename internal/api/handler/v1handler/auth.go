package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	"catconnect/pkg/controller"
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"net/http"
)

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by registration and login.
type SessionResponse struct {
	User  *domain.User `json:"user"`
	Token auth.Token   `json:"token"`
}

func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req marketplace.RegisterInput
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Marketplace.Accounts.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeSession(w, r, http.StatusCreated, user)
}

func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "email and password are required"))

		return
	}

	user, err := h.deps.Marketplace.Accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeSession(w, r, http.StatusOK, user)
}

func (h Handler) writeSession(w http.ResponseWriter, r *http.Request, status int, user *domain.User) {
	token, err := h.deps.Issuer.Issue(domain.Principal{UserID: user.ID, Role: user.Role})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, status, SessionResponse{User: user, Token: token})
}
