package v1handler

import (
	"catconnect/pkg/authz"
	"catconnect/pkg/serrors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// RouteOptions tune the router.
type RouteOptions struct {
	// AuthRequests per AuthWindow and client IP are allowed on login,
	// registration and passcode endpoints. Zero disables the limit.
	AuthRequests int
	AuthWindow   time.Duration
}

// Routes mounts every /v1 endpoint on a new router.
func (h Handler) Routes(sec *SecHandler, opts RouteOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(sec.Authenticate)

	limited := h.authRateLimit(opts)
	allow := sec.Authorize
	read, write := authz.ActionRead, authz.ActionWrite

	r.Route("/auth", func(r chi.Router) {
		r.Use(limited)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	r.Route("/me", func(r chi.Router) {
		r.With(allow(authz.ObjectProfile, read)).Get("/", h.Profile)
		r.With(allow(authz.ObjectProfile, write)).Patch("/", h.UpdateProfile)
		r.With(limited, allow(authz.ObjectVerification, write)).Post("/verification/{method}", h.RequestOTP)
		r.With(limited, allow(authz.ObjectVerification, write)).Post("/verification/{method}/confirm", h.ConfirmOTP)
		r.With(allow(authz.ObjectApplication, read)).Get("/applications", h.MyApplications)
	})

	r.Route("/businesses", func(r chi.Router) {
		r.Get("/", h.ListBusinesses)
		r.With(allow(authz.ObjectBusiness, write)).Post("/", h.RegisterBusiness)
		r.Route("/{businessID}", func(r chi.Router) {
			r.Get("/", h.GetBusiness)
			r.With(allow(authz.ObjectBusiness, write)).Patch("/", h.UpdateBusiness)
			r.With(allow(authz.ObjectBusiness, write)).Delete("/", h.DeleteBusiness)
			r.Get("/reviews", h.ListReviews)
			r.With(allow(authz.ObjectReview, write)).Post("/reviews", h.CreateReview)
		})
	})
	r.With(allow(authz.ObjectReview, write)).Delete("/reviews/{reviewID}", h.DeleteReview)

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.With(allow(authz.ObjectJob, write)).Post("/", h.PostJob)
		r.Route("/{jobID}", func(r chi.Router) {
			r.Get("/", h.GetJob)
			r.With(allow(authz.ObjectJob, write)).Patch("/", h.UpdateJob)
			r.With(allow(authz.ObjectJob, write)).Post("/active", h.SetJobActive)
			r.With(allow(authz.ObjectApplication, write)).Post("/applications", h.Apply)
			r.With(allow(authz.ObjectJob, read)).Get("/applications", h.JobApplications)
		})
	})

	r.Route("/applications/{applicationID}", func(r chi.Router) {
		r.With(allow(authz.ObjectJob, write)).Patch("/", h.UpdateApplicationStatus)
		r.With(allow(authz.ObjectApplication, write)).Post("/withdraw", h.WithdrawApplication)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.ListServices)
		r.With(allow(authz.ObjectService, write)).Post("/", h.CreateService)
		r.Route("/{serviceID}", func(r chi.Router) {
			r.Get("/", h.GetService)
			r.With(allow(authz.ObjectService, write)).Patch("/", h.UpdateService)
			r.With(allow(authz.ObjectService, write)).Post("/active", h.SetServiceActive)
		})
	})

	r.Route("/notifications", func(r chi.Router) {
		r.With(allow(authz.ObjectNotification, read)).Get("/", h.ListNotifications)
		r.With(allow(authz.ObjectNotification, read)).Get("/unread-count", h.UnreadNotificationCount)
		r.With(allow(authz.ObjectNotification, write)).Post("/read", h.MarkNotificationsRead)
	})

	r.Route("/assistant", func(r chi.Router) {
		r.Use(allow(authz.ObjectAssistant, write))
		r.Post("/chat", h.Chat)
		r.Delete("/chat", h.ResetChat)
		r.Post("/resume-analysis", h.AnalyzeResume)
	})
	r.Get("/locations/suggest", h.SuggestLocations)

	r.Route("/admin", func(r chi.Router) {
		r.With(allow(authz.ObjectModeration, read)).Get("/businesses/pending", h.ListPendingBusinesses)
		r.With(allow(authz.ObjectModeration, write)).Post("/businesses/{businessID}/moderation", h.ModerateBusiness)
		r.With(allow(authz.ObjectUser, write)).Post("/users/{userID}/active", h.SetUserActive)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "method %s not allowed", r.Method))
	})

	return r
}

func (h Handler) authRateLimit(opts RouteOptions) func(http.Handler) http.Handler {
	if opts.AuthRequests <= 0 || opts.AuthWindow <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(opts.AuthRequests, opts.AuthWindow,
		httprate.WithKeyFuncs(httprate.KeyByRealIP, httprate.KeyByEndpoint),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			h.writeError(w, r, serrors.With(serrors.ErrRateLimited, "too many attempts, try again later"))
		}),
	)
}
