package worker

import (
	"catconnect/internal/tasks"
	"catconnect/pkg/domain"
	"catconnect/pkg/geocoder"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// GeocodeSnooze is how long a geocode job waits after the provider throttled it.
const GeocodeSnooze = time.Minute

// GeocodeWorker stores the coordinates of a business address.
//
// The full address is tried first, then the municipality alone so the
// business is at least placed on the map. A business without any match keeps
// a nil location and the job completes.
type GeocodeWorker struct {
	river.WorkerDefaults[tasks.GeocodeBusinessArgs]

	storage  storage.BusinessStorage
	geocoder geocoder.Client
}

func NewGeocodeWorker(s storage.BusinessStorage, g geocoder.Client) *GeocodeWorker {
	return &GeocodeWorker{storage: s, geocoder: g}
}

func (w *GeocodeWorker) Work(ctx context.Context, job *river.Job[tasks.GeocodeBusinessArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("businessID", job.Args.BusinessID))

	business, err := w.storage.BusinessByID(ctx, job.Args.BusinessID)
	if err != nil {
		return fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		logger.Info(ctx, "business no longer exists, skipping geocode")

		return river.JobCancel(serrors.With(serrors.ErrNotFound, "business not found")) //nolint: wrapcheck
	}

	var place *domain.Place
	for _, query := range geocodeQueries(business) {
		places, err := w.geocoder.Search(ctx, query, 1)
		if err != nil {
			if errors.Is(err, serrors.ErrRateLimited) {
				logger.Warn(ctx, "geocoder rate limited", zap.Error(err))

				return river.JobSnooze(GeocodeSnooze) //nolint: wrapcheck
			}

			return fmt.Errorf("could not geocode address: %w", err)
		}
		if len(places) > 0 {
			place = &places[0]

			break
		}
	}

	if place == nil {
		logger.Info(ctx, "no geocode match for business address", zap.String("address", business.Address))

		return nil
	}

	if _, err := w.storage.UpdateBusiness(ctx, business.ID, storage.BusinessUpdates{Location: &place.Point}); err != nil {
		return fmt.Errorf("could not store business location: %w", err)
	}

	logger.Info(ctx, "business geocoded",
		zap.String("match", place.DisplayName),
		zap.Float64("lat", place.Point.Latitude),
		zap.Float64("lon", place.Point.Longitude))

	return nil
}

func geocodeQueries(b *domain.Business) []string {
	region := b.Municipality + ", Catanduanes, Philippines"
	address := strings.TrimSpace(b.Address)
	if address == "" {
		return []string{region}
	}

	return []string{address + ", " + region, region}
}
