package marketplace

import (
	"catconnect/internal/tasks"
	"context"

	"github.com/riverqueue/river"
)

// TaskDispatcher hands background work to the task system.
//
//go:generate mockgen -package mockmarketplace -source=interface.go -destination=mock/mockmarketplace.go *
type TaskDispatcher interface {
	Dispatch(ctx context.Context, args river.JobArgs) tasks.Route
}
