package usecases

import (
	"context"
	"time"

	"github.com/ankitcloud202/alramzbot/internal/application/domain/model"
	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/ankitcloud202/alramzbot/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// responsesCacheKey is the single logical resource the dashboard reads; all
// three views (table, bar chart, line chart) share it.
const responsesCacheKey = "survey_responses"

// ResponseFetcher lists the full survey response set from the remote store.
type ResponseFetcher interface {
	FetchAll(ctx context.Context) ([]entities.SurveyResponseRecord, error)
}

// ResponseCacheConfig tunes the cache-aside read path.
type ResponseCacheConfig struct {
	// TTL bounds how stale a cached set may get before a read refetches.
	TTL time.Duration
	// FetchTimeout bounds one remote list call.
	FetchTimeout time.Duration
	// RefreshMinDuration keeps the "Sync Now" affordance visible on fast
	// networks. Zero disables the floor (tests).
	RefreshMinDuration time.Duration
}

// ResponseUseCase serves the current response set and its derived views
// behind a coalescing cache.
type ResponseUseCase struct {
	repo  ResponseFetcher
	cache *cache.Store
	log   *zap.Logger
	cfg   ResponseCacheConfig
}

// NewResponseUseCase creates a new ResponseUseCase.
func NewResponseUseCase(repo ResponseFetcher, store *cache.Store, log *zap.Logger, cfg ResponseCacheConfig) *ResponseUseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	return &ResponseUseCase{
		repo:  repo,
		cache: store,
		log:   log,
		cfg:   cfg,
	}
}

// GetCurrent returns the current response set, fetching through the cache on
// a miss. Concurrent misses share one remote call.
func (u *ResponseUseCase) GetCurrent(ctx context.Context) ([]entities.SurveyResponseRecord, error) {
	value, err := u.cache.GetOrFetch(responsesCacheKey, u.cfg.TTL, u.fetch)
	if err != nil {
		return nil, err
	}
	return value.([]entities.SurveyResponseRecord), nil
}

// Refresh invalidates the cached set and forces one re-fetch ("Sync Now").
// Rapid concurrent triggers collapse into a single remote call. Returns the
// refreshed record count.
func (u *ResponseUseCase) Refresh(ctx context.Context) (int, error) {
	start := time.Now()

	u.cache.Invalidate(responsesCacheKey)
	value, err := u.cache.GetOrFetch(responsesCacheKey, u.cfg.TTL, u.fetch)

	if remaining := u.cfg.RefreshMinDuration - time.Since(start); remaining > 0 {
		select {
		case <-time.After(remaining):
		case <-ctx.Done():
		}
	}

	if err != nil {
		return 0, err
	}
	return len(value.([]entities.SurveyResponseRecord)), nil
}

// fetch runs one remote list under the configured timeout. It deliberately
// does not inherit a caller context: the result is shared by every coalesced
// caller, so no single request's cancellation may abort it.
func (u *ResponseUseCase) fetch() (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), u.cfg.FetchTimeout)
	defer cancel()

	records, err := u.repo.FetchAll(ctx)
	if err != nil {
		u.log.Error("survey response fetch failed", zap.Error(err))
		return nil, err
	}

	u.log.Info("survey responses fetched", zap.Int("count", len(records)))
	return records, nil
}

// GetRows returns the table projection of the current set.
func (u *ResponseUseCase) GetRows(ctx context.Context) ([]model.ResponseRow, error) {
	records, err := u.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectRows(records), nil
}

// GetDistribution returns the rating histogram of the current set.
func (u *ResponseUseCase) GetDistribution(ctx context.Context) ([]model.RatingDistributionRow, error) {
	records, err := u.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return Distribution(records), nil
}

// GetMonthlyAverages returns the monthly average series of the current set.
func (u *ResponseUseCase) GetMonthlyAverages(ctx context.Context) ([]model.MonthlyAverageRow, error) {
	records, err := u.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyAverages(records), nil
}
