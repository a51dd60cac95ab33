package marketplace

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"catconnect/pkg/validation"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is a self-service sign up.
type RegisterInput struct {
	Email        string      `json:"email"        validate:"required,max=254"`
	Password     string      `json:"password"     validate:"required,min=8,max=72"`
	Name         string      `json:"name"         validate:"required,max=120"`
	Role         domain.Role `json:"role"         validate:"required,oneof=job_seeker business_owner service_provider"`
	Phone        string      `json:"phone"        validate:"omitempty,max=32"`
	Municipality string      `json:"municipality" validate:"omitempty,municipality"`
}

// ProfileUpdate lists the profile fields a user may change; nil fields are
// left untouched.
type ProfileUpdate struct {
	Name         *string `json:"name"         validate:"omitempty,min=1,max=120"`
	Phone        *string `json:"phone"        validate:"omitempty,max=32"`
	Municipality *string `json:"municipality" validate:"omitempty,municipality"`
}

// AccountService manages user accounts.
type AccountService struct {
	*base
}

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("catconnect-timing"), bcrypt.MinCost) //nolint: gochecknoglobals

// Register creates an active account, then sends a welcome email and
// notification.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	var phone string
	if in.Phone != "" {
		if phone, err = NormalizePhone(in.Phone); err != nil {
			return nil, err
		}
	}
	municipality, _ := domain.CanonicalMunicipality(in.Municipality)

	existing, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Phone:        phone,
		Municipality: municipality,
		Active:       true,
	})
	if err != nil {
		return nil, duplicate(fmt.Errorf("could not create user: %w", err), "email is already registered")
	}

	ctx = logger.WithFields(ctx, zap.Stringer("userID", user.ID))
	logger.Info(ctx, "user registered", zap.String("role", string(user.Role)))

	s.email(ctx, user.Email, "Welcome to Catanduanes Connect",
		fmt.Sprintf("Hi %s,\n\nYour %s account is ready. Verify your email address to unlock every feature: %s\n",
			user.Name, roleLabel(user.Role), s.link("/me")))
	s.notify(ctx, domain.Notification{
		UserID:  user.ID,
		Type:    domain.NotificationTypeWelcome,
		Title:   "Welcome to Catanduanes Connect",
		Message: "Verify your email address to start using the marketplace.",
		Link:    "/me",
	})

	return user, nil
}

// Authenticate checks credentials. Unknown emails and wrong passwords yield
// the same unauthorized error; deactivated accounts are forbidden.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	invalid := serrors.With(serrors.ErrUnauthorized, "invalid email or password")

	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, invalid
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Warn(ctx, "unexpected password hash error", zap.Error(err))
		}

		return nil, invalid
	}

	if !user.Active {
		return nil, serrors.With(serrors.ErrForbidden, "account is deactivated")
	}

	return user, nil
}

// Profile returns the account of p.
func (s *AccountService) Profile(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}

	return s.user(ctx, p.UserID)
}

// UpdateProfile changes the account of p. A new phone number must be
// verified again.
func (s *AccountService) UpdateProfile(ctx context.Context, p domain.Principal, in ProfileUpdate) (*domain.User, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	current, err := s.user(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	updates := storage.UserUpdates{Name: in.Name}
	if in.Municipality != nil {
		m, _ := domain.CanonicalMunicipality(*in.Municipality)
		updates.Municipality = &m
	}
	if in.Phone != nil {
		phone := ""
		if *in.Phone != "" {
			if phone, err = NormalizePhone(*in.Phone); err != nil {
				return nil, err
			}
		}
		if phone != current.Phone {
			unverified := false
			updates.Phone = &phone
			updates.PhoneVerified = &unverified
		}
	}

	user, err := s.storage.UpdateUser(ctx, p.UserID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// SetUserActive activates or deactivates an account. Admins only; an admin
// cannot deactivate their own account.
func (s *AccountService) SetUserActive(ctx context.Context,
	p domain.Principal,
	userID domain.UserID,
	active bool) (*domain.User, error) {
	if !p.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "admin only")
	}
	if p.UserID == userID && !active {
		return nil, serrors.With(serrors.ErrBadRequest, "cannot deactivate your own account")
	}

	user, err := s.storage.UpdateUser(ctx, userID, storage.UserUpdates{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	logger.Info(ctx, "user activation changed",
		zap.Stringer("userID", userID), zap.Bool("active", active), zap.Stringer("by", p.UserID))

	return user, nil
}

func roleLabel(r domain.Role) string {
	switch r {
	case domain.RoleJobSeeker:
		return "job seeker"
	case domain.RoleBusinessOwner:
		return "business owner"
	case domain.RoleServiceProvider:
		return "service provider"
	default:
		return string(r)
	}
}
