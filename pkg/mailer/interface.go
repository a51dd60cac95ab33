// Package mailer defines outgoing email delivery.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
package mailer

import (
	"catconnect/pkg/domain"
	"context"
)

// Mailer delivers a single email.
// Permanent failures (bad recipient, rejected message) are reported with
// serrors.ErrBadRequest so callers can stop retrying.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}
