package domain

import "time"

// ContactMethod is the channel a one-time passcode is delivered to.
type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "email"
	ContactMethodPhone ContactMethod = "phone"
)

// Verification is a pending one-time passcode challenge for a contact method.
// Only the hash of the code is kept.
type Verification struct {
	UserID     UserID        `json:"userId"`
	Method     ContactMethod `json:"method"`
	Target     string        `json:"target"`
	CodeHash   string        `json:"codeHash"`
	Attempts   int           `json:"attempts"`
	ExpiresAt  time.Time     `json:"expiresAt"`
	LastSentAt time.Time     `json:"lastSentAt"`
}

// Expired reports whether the challenge can no longer be confirmed.
func (v Verification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
