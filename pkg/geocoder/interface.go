// Package geocoder resolves free-form addresses to coordinates.
package geocoder

import (
	"catconnect/pkg/domain"
	"context"
)

// Client is the abstraction for geocoding providers.
//
//go:generate mockgen -package mockgeocoder -source=interface.go -destination=mock/mockgeocoder.go *
type Client interface {
	// Search returns at most limit places matching query, best match first.
	// No match is an empty result, not an error.
	Search(ctx context.Context, query string, limit int) ([]domain.Place, error)
}
