package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/ankitcloud202/alramzbot/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeFetcher counts remote list calls and can hold them open so tests can
// observe coalescing.
type fakeFetcher struct {
	calls   int32
	records []entities.SurveyResponseRecord
	err     error

	entered chan struct{}
	release chan struct{}
}

func (f *fakeFetcher) FetchAll(ctx context.Context) ([]entities.SurveyResponseRecord, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.records, f.err
}

func (f *fakeFetcher) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

func newResponseUseCaseForTest(fetcher *fakeFetcher) *ResponseUseCase {
	return NewResponseUseCase(fetcher, cache.New(), zap.NewNop(), ResponseCacheConfig{
		TTL:          time.Minute,
		FetchTimeout: 5 * time.Second,
	})
}

func TestGetCurrentFetchesOnceWhileFresh(t *testing.T) {
	fetcher := &fakeFetcher{records: []entities.SurveyResponseRecord{
		{ID: "r1", CreatedAt: time.Now()},
	}}
	uc := newResponseUseCaseForTest(fetcher)

	records, err := uc.GetCurrent(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	records, err = uc.GetCurrent(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, int32(1), fetcher.callCount())
}

func TestGetCurrentPropagatesFetchError(t *testing.T) {
	fetcher := &fakeFetcher{err: entities.ErrFetchFailed}
	uc := newResponseUseCaseForTest(fetcher)

	_, err := uc.GetCurrent(context.Background())
	assert.ErrorIs(t, err, entities.ErrFetchFailed)
}

func TestRefreshForcesRefetch(t *testing.T) {
	fetcher := &fakeFetcher{records: []entities.SurveyResponseRecord{
		{ID: "r1", CreatedAt: time.Now()},
		{ID: "r2", CreatedAt: time.Now()},
	}}
	uc := newResponseUseCaseForTest(fetcher)

	_, err := uc.GetCurrent(context.Background())
	require.NoError(t, err)

	total, err := uc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, int32(2), fetcher.callCount())
}

func TestRefreshCoalescesConcurrentTriggers(t *testing.T) {
	fetcher := &fakeFetcher{
		records: []entities.SurveyResponseRecord{{ID: "r1", CreatedAt: time.Now()}},
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	uc := newResponseUseCaseForTest(fetcher)

	var wg sync.WaitGroup
	results := make(chan int, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		total, err := uc.Refresh(context.Background())
		assert.NoError(t, err)
		results <- total
	}()

	// Wait until the first trigger's fetch is in flight, then fire the
	// second: it must join the flight, not start another remote call.
	<-fetcher.entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		total, err := uc.Refresh(context.Background())
		assert.NoError(t, err)
		results <- total
	}()

	time.Sleep(20 * time.Millisecond)
	close(fetcher.release)
	wg.Wait()
	close(results)

	for total := range results {
		assert.Equal(t, 1, total)
	}
	assert.Equal(t, int32(1), fetcher.callCount())
}

func TestRefreshHoldsMinimumDuration(t *testing.T) {
	fetcher := &fakeFetcher{records: nil}
	uc := NewResponseUseCase(fetcher, cache.New(), zap.NewNop(), ResponseCacheConfig{
		TTL:                time.Minute,
		FetchTimeout:       5 * time.Second,
		RefreshMinDuration: 50 * time.Millisecond,
	})

	start := time.Now()
	_, err := uc.Refresh(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRefreshMinDurationYieldsOnCancel(t *testing.T) {
	fetcher := &fakeFetcher{records: nil}
	uc := NewResponseUseCase(fetcher, cache.New(), zap.NewNop(), ResponseCacheConfig{
		TTL:                time.Minute,
		FetchTimeout:       5 * time.Second,
		RefreshMinDuration: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := uc.Refresh(ctx)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDerivedViewsShareOneFetch(t *testing.T) {
	fetcher := &fakeFetcher{records: []entities.SurveyResponseRecord{
		{
			ID:         "r1",
			CreatedAt:  time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC),
			Attributes: map[string]string{"Question1": "4"},
		},
	}}
	uc := newResponseUseCaseForTest(fetcher)

	rows, err := uc.GetRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	dist, err := uc.GetDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, dist, 5)
	assert.Equal(t, 1, dist[0].Rating4)

	monthly, err := uc.GetMonthlyAverages(context.Background())
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, "Jan", monthly[0].Month)

	assert.Equal(t, int32(1), fetcher.callCount())
}
