package marketplace

import (
	"catconnect/internal/config"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MaxPageSize bounds the limit of every listing.
const MaxPageSize = 100

// Options configure the marketplace services. They are typically derived
// from the application configuration with NewOptions.
type Options struct {
	// BcryptCost is used for passwords and one-time passcodes.
	BcryptCost int
	// OTPTTL is how long a passcode stays valid.
	OTPTTL time.Duration
	// OTPMaxAttempts is the number of wrong codes tolerated per challenge.
	OTPMaxAttempts int
	// OTPResendCooldown is the minimum delay between two passcodes.
	OTPResendCooldown time.Duration
	// DefaultPageSize applies to listings requested without a limit.
	DefaultPageSize uint
	// PublicURL prefixes links in emails.
	PublicURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BcryptCost:        cfg.Marketplace.BcryptCost,
		OTPTTL:            cfg.Marketplace.OTPTTL,
		OTPMaxAttempts:    cfg.Marketplace.OTPMaxAttempts,
		OTPResendCooldown: cfg.Marketplace.OTPResendCooldown,
		DefaultPageSize:   cfg.Marketplace.DefaultPageSize,
		PublicURL:         cfg.Marketplace.PublicURL,
	}
}

func (o Options) withDefaults() Options {
	if o.BcryptCost < bcrypt.MinCost || o.BcryptCost > bcrypt.MaxCost {
		o.BcryptCost = bcrypt.DefaultCost
	}
	if o.OTPTTL <= 0 {
		o.OTPTTL = 10 * time.Minute
	}
	if o.OTPMaxAttempts <= 0 {
		o.OTPMaxAttempts = 5
	}
	if o.DefaultPageSize == 0 || o.DefaultPageSize > MaxPageSize {
		o.DefaultPageSize = 20
	}
	o.PublicURL = strings.TrimRight(o.PublicURL, "/")

	return o
}
