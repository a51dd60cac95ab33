package v1handler

import (
	"catconnect/internal/auth"
	"catconnect/internal/config"
	"catconnect/pkg/authz"
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
	// Issuer is required in tokens when set.
	Issuer string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Issuer:    cfg.JWT.Issuer,
	}
}

// AccountLookup loads the account a token was issued for.
type AccountLookup interface {
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// SecHandler authenticates bearer tokens and authorizes roles on route groups.
type SecHandler struct {
	verifier *auth.Verifier
	enforcer *authz.Enforcer
	accounts AccountLookup
	errors   Handler
}

// NewSecHandler builds the security middlewares. With a nil accounts lookup
// tokens are trusted until they expire.
func NewSecHandler(opts *SecHandlerOptions, enforcer *authz.Enforcer, accounts AccountLookup) (*SecHandler, error) {
	verifier, err := auth.NewVerifier(opts.PublicKey, opts.Issuer)
	if err != nil {
		return nil, fmt.Errorf("could not create token verifier: %w", err)
	}

	return &SecHandler{verifier: verifier, enforcer: enforcer, accounts: accounts}, nil
}

// Authenticate resolves the bearer token, when present, into the request
// principal. Requests without a token continue anonymously; an invalid token
// is rejected.
func (s *SecHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)

			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			s.errors.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "expected a bearer token"))

			return
		}

		p, err := s.verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			s.errors.writeError(w, r, err)

			return
		}

		ctx := logger.WithFields(auth.WithPrincipal(r.Context(), p), zap.Stringer("userID", p.UserID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize rejects anonymous requests, roles the policy does not allow to
// perform action on object and accounts deactivated after the token was issued.
func (s *SecHandler) Authorize(object authz.Object, action authz.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := auth.PrincipalFrom(r.Context())
			if p.Anonymous() {
				s.errors.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "sign in required"))

				return
			}

			allowed, err := s.enforcer.Allowed(p.Role, object, action)
			if err != nil {
				s.errors.writeError(w, r, err)

				return
			}
			if !allowed {
				s.errors.writeError(w, r, serrors.With(serrors.ErrForbidden,
					"role %s may not %s %s", p.Role, action, object))

				return
			}
			if err := s.checkAccount(r.Context(), p); err != nil {
				s.errors.writeError(w, r, err)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *SecHandler) checkAccount(ctx context.Context, p domain.Principal) error {
	if s.accounts == nil {
		return nil
	}

	user, err := s.accounts.UserByID(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("could not load account: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrUnauthorized, "account no longer exists")
	}
	if !user.Active {
		return serrors.With(serrors.ErrForbidden, "account is deactivated")
	}

	return nil
}
