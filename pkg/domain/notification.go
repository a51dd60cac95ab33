package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies an in-app notification.
type NotificationID uuid.UUID

// String returns the canonical uuid representation.
func (id NotificationID) String() string { return uuid.UUID(id).String() }

func (id NotificationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *NotificationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// NotificationType categorizes notifications for the client.
type NotificationType string

const (
	NotificationTypeWelcome           NotificationType = "welcome"
	NotificationTypeVerification      NotificationType = "verification"
	NotificationTypeBusinessPending   NotificationType = "business_pending"
	NotificationTypeBusinessModerated NotificationType = "business_moderated"
	NotificationTypeApplication       NotificationType = "application"
	NotificationTypeApplicationStatus NotificationType = "application_status"
	NotificationTypeReview            NotificationType = "review"
)

// Notification is an in-app message addressed to a single user.
type Notification struct {
	ID      NotificationID   `json:"id"`
	UserID  UserID           `json:"userId"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Link    string           `json:"link,omitempty"`
	Read    bool             `json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}

// Email is an outgoing message handed to the mailer.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}
