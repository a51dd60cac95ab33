package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// TaskStorage enqueues background tasks into the queue backend.
type TaskStorage interface {
	// AddJob enqueues a task. When the storage handle is transactional the task
	// becomes visible only once the transaction commits. The boolean is false
	// when a uniqueness rule skipped the insert.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
