package tasks

import (
	"catconnect/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// SendEmailArgs delivers one email. Secret emails, such as passcodes, are
// never written to the queue.
type SendEmailArgs struct {
	Email  domain.Email `json:"email"`
	Secret bool         `json:"-"`
}

func (SendEmailArgs) Kind() string { return "send_email" }

func (a SendEmailArgs) InProcessOnly() bool { return a.Secret }

// CreateNotificationArgs stores one in-app notification.
type CreateNotificationArgs struct {
	Notification domain.Notification `json:"notification"`
}

func (CreateNotificationArgs) Kind() string { return "create_notification" }

// GeocodeBusinessArgs resolves the coordinates of a business from its
// current address.
type GeocodeBusinessArgs struct {
	BusinessID domain.BusinessID `json:"businessId" river:"unique"`
}

func (GeocodeBusinessArgs) Kind() string { return "geocode_business" }

// InsertOpts allows a single queued geocode per business. Completed jobs are
// not part of the uniqueness check so an address change can geocode again.
func (GeocodeBusinessArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
