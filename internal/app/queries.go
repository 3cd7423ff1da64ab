package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hbnb_web/internal/domain"
)

// UpstreamError is a non-2xx answer from the API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api status %d", e.Status)
}

func (e *UpstreamError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == 404
}

type QueryService struct {
	api   domain.APIClient
	cache domain.Cache
	ttl   time.Duration
	log   zerolog.Logger
	newID func() string
}

func NewQueryService(api domain.APIClient, c domain.Cache, ttl time.Duration, log zerolog.Logger) *QueryService {
	return &QueryService{api: api, cache: c, ttl: ttl, log: log, newID: uuid.NewString}
}

func snapshotKey(viewID string) string { return "places:view:" + viewID }

// LoadPlaces fetches the list and stores it as a new page view's snapshot.
// A failed snapshot write is logged; the fetched list is still returned.
func (s *QueryService) LoadPlaces(ctx context.Context) (domain.PlacesCache, error) {
	res, err := s.api.Get(ctx, endpointPlaces, false)
	if err != nil {
		return domain.PlacesCache{}, err
	}
	if !res.OK() {
		return domain.PlacesCache{}, &UpstreamError{Status: res.Status, Message: res.ErrorMessage()}
	}
	var raw []map[string]any
	if err := res.Decode(&raw); err != nil {
		return domain.PlacesCache{}, fmt.Errorf("decode places: %w", err)
	}

	pc := domain.PlacesCache{ViewID: s.newID(), Places: mapPlaces(raw)}
	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotKey(pc.ViewID), pc, int(s.ttl.Seconds())); err != nil {
			s.log.Warn().Err(err).Str("view", pc.ViewID).Msg("store places snapshot failed")
		}
	}
	return pc, nil
}

// Snapshot returns a stored page view; ok is false on miss or cache error.
func (s *QueryService) Snapshot(ctx context.Context, viewID string) (domain.PlacesCache, bool) {
	if s.cache == nil || viewID == "" {
		return domain.PlacesCache{}, false
	}
	var pc domain.PlacesCache
	ok, err := s.cache.Get(ctx, snapshotKey(viewID), &pc)
	if err != nil {
		s.log.Warn().Err(err).Str("view", viewID).Msg("read places snapshot failed")
		return domain.PlacesCache{}, false
	}
	return pc, ok
}

func (s *QueryService) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	res, err := s.api.Get(ctx, placeEndpoint(id), false)
	if err != nil {
		return domain.Place{}, err
	}
	if !res.OK() {
		return domain.Place{}, &UpstreamError{Status: res.Status, Message: res.ErrorMessage()}
	}
	var raw map[string]any
	if err := res.Decode(&raw); err != nil {
		return domain.Place{}, fmt.Errorf("decode place %s: %w", id, err)
	}
	return mapPlace(raw), nil
}
