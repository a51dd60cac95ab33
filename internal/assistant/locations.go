package assistant

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultSuggestions = 5
	maxSuggestions     = 10

	SourceMunicipality = "municipality"
	SourceGeocoder     = "geocoder"
)

// SuggestLocations completes a partial location. Municipalities starting with
// query come first, then geocoder results within Catanduanes. A failing
// geocoder only leaves the municipality matches.
func (a *Assistant) SuggestLocations(ctx context.Context, query string, limit int) ([]domain.LocationSuggestion, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return nil, serrors.With(serrors.ErrBadRequest, "q must be at least 2 characters")
	}
	if limit <= 0 {
		limit = defaultSuggestions
	}
	if limit > maxSuggestions {
		return nil, serrors.With(serrors.ErrBadRequest, "limit must be at most %d", maxSuggestions)
	}

	seen := make(map[string]struct{})
	suggestions := make([]domain.LocationSuggestion, 0, limit)
	add := func(s domain.LocationSuggestion) {
		key := strings.ToLower(s.Label)
		if _, dup := seen[key]; dup || len(suggestions) >= limit {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, s)
	}

	lower := strings.ToLower(query)
	for _, m := range domain.Municipalities {
		if strings.HasPrefix(strings.ToLower(m), lower) {
			add(domain.LocationSuggestion{Label: m + ", Catanduanes", Source: SourceMunicipality})
		}
	}

	if a.geocoder == nil || len(suggestions) >= limit {
		return suggestions, nil
	}

	places, err := a.geocoder.Search(ctx, query+", Catanduanes", limit)
	if err != nil {
		logger.Warn(ctx, "location suggestions degraded to municipalities", zap.Error(err))

		return suggestions, nil
	}
	for _, place := range places {
		point := place.Point
		add(domain.LocationSuggestion{Label: place.DisplayName, Source: SourceGeocoder, Point: &point})
	}

	return suggestions, nil
}
