// Package marketplace implements the business rules of the marketplace:
// accounts and their verification, businesses and their moderation, job
// postings and applications, services, reviews and notifications.
//
// Every operation receives the acting domain.Principal explicitly. Storage
// results are translated into serrors kinds here; side effects such as
// emails and notifications are dispatched as background tasks after the
// main write succeeded and never fail the operation.
package marketplace

import (
	"catconnect/internal/tasks"
	"catconnect/pkg/domain"
	"catconnect/pkg/kv"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Deps are the collaborators shared by the marketplace services.
type Deps struct {
	Storage storage.Storage
	Tasks   TaskDispatcher
	OTP     kv.OTPStore
}

// Marketplace bundles every service.
type Marketplace struct {
	Accounts      *AccountService
	Verifications *VerificationService
	Businesses    *BusinessService
	Jobs          *JobService
	Services      *ServiceService
	Reviews       *ReviewService
	Notifications *NotificationService
}

// New builds all services on the same dependencies.
func New(deps Deps, opts Options) *Marketplace {
	b := newBase(deps, opts)

	return &Marketplace{
		Accounts:      &AccountService{base: b},
		Verifications: &VerificationService{base: b},
		Businesses:    &BusinessService{base: b},
		Jobs:          &JobService{base: b},
		Services:      &ServiceService{base: b},
		Reviews:       &ReviewService{base: b},
		Notifications: &NotificationService{base: b},
	}
}

type base struct {
	storage storage.Storage
	tasks   TaskDispatcher
	otp     kv.OTPStore
	opts    Options
	now     func() time.Time
}

func newBase(deps Deps, opts Options) *base {
	return &base{
		storage: deps.Storage,
		tasks:   deps.Tasks,
		otp:     deps.OTP,
		opts:    opts.withDefaults(),
		now:     time.Now,
	}
}

// PageRequest is a listing page as requested by a client.
type PageRequest struct {
	// Cursor is the nextCursor of the previous page.
	Cursor string
	Limit  uint
}

func (b *base) pageQuery(req PageRequest) (storage.PageQuery, error) {
	q := storage.PageQuery{Limit: req.Limit}
	if q.Limit == 0 {
		q.Limit = b.opts.DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		return q, serrors.With(serrors.ErrBadRequest, "limit must be at most %d", MaxPageSize)
	}
	if req.Cursor != "" {
		c, err := storage.ParseCursor(req.Cursor)
		if err != nil {
			return q, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		q.Cursor = c
	}

	return q, nil
}

func (b *base) dispatch(ctx context.Context, args river.JobArgs) {
	if b.tasks == nil {
		return
	}
	b.tasks.Dispatch(ctx, args)
}

func (b *base) notify(ctx context.Context, n domain.Notification) {
	b.dispatch(ctx, tasks.CreateNotificationArgs{Notification: n})
}

func (b *base) email(ctx context.Context, to, subject, text string) {
	b.dispatch(ctx, tasks.SendEmailArgs{Email: domain.Email{To: to, Subject: subject, Text: text}})
}

func (b *base) link(path string) string {
	return b.opts.PublicURL + path
}

// user loads a user that must exist.
func (b *base) user(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, err := b.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return u, nil
}

// notifyAdmins fans a notification out to every active admin. Failures are
// logged only.
func (b *base) notifyAdmins(ctx context.Context, n domain.Notification) {
	admins, err := b.storage.ActiveUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		logger.Warn(ctx, "could not list admins to notify", zap.Error(err))

		return
	}
	for _, admin := range admins {
		n.UserID = admin.ID
		b.notify(ctx, n)
	}
}

func requireSignedIn(p domain.Principal) error {
	if p.Anonymous() {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}

	return nil
}

// duplicate converts storage.ErrDuplicate into a conflict with msg.
func duplicate(err error, msg string) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
	}

	return err
}
