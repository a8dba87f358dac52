package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/educonsult-admin/internal/app/models"
)

type fakeVisitorStats struct {
	total, unique int64
	calls         int
}

func (f *fakeVisitorStats) Count(ctx context.Context) (int64, error) {
	f.calls++
	return f.total, nil
}

func (f *fakeVisitorStats) CountUniqueIPs(ctx context.Context) (int64, error) {
	return f.unique, nil
}

type fakeApplicationStats struct {
	total    int64
	byStatus map[models.ApplicationStatus]int64
}

func (f *fakeApplicationStats) Count(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeApplicationStats) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	return f.byStatus[status], nil
}

type fakePublishedStats struct {
	total, published int64
}

func (f *fakePublishedStats) Count(ctx context.Context) (int64, error) { return f.total, nil }

func (f *fakePublishedStats) CountPublished(ctx context.Context) (int64, error) {
	return f.published, nil
}

type fakeActiveStats struct {
	total, active int64
}

func (f *fakeActiveStats) Count(ctx context.Context) (int64, error)       { return f.total, nil }
func (f *fakeActiveStats) CountActive(ctx context.Context) (int64, error) { return f.active, nil }

func newAnalyticsFixture(visitors *fakeVisitorStats, ttl time.Duration) AnalyticsService {
	return NewAnalyticsService(
		visitors,
		&fakeApplicationStats{total: 12, byStatus: map[models.ApplicationStatus]int64{
			models.StatusPending:     5,
			models.StatusApproved:    4,
			models.StatusRejected:    2,
			models.StatusUnderReview: 1,
		}},
		&fakePublishedStats{total: 10, published: 7},
		&fakeActiveStats{total: 6, active: 5},
		&fakeActiveStats{total: 9, active: 8},
		&fakeActiveStats{total: 3, active: 2},
		ttl,
		zerolog.Nop(),
	)
}

func TestGetDashboardAggregates(t *testing.T) {
	visitors := &fakeVisitorStats{total: 100, unique: 40}
	svc := newAnalyticsFixture(visitors, time.Minute)

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.Visitors.Total)
	assert.Equal(t, int64(40), resp.Visitors.Unique)
	assert.Equal(t, int64(12), resp.Applications.Total)
	assert.Equal(t, int64(5), resp.Applications.Pending)
	assert.Equal(t, int64(4), resp.Applications.Approved)
	assert.Equal(t, int64(2), resp.Applications.Rejected)
	assert.Equal(t, int64(1), resp.Applications.UnderReview)
	assert.Equal(t, int64(10), resp.Content.BlogPosts.Total)
	assert.Equal(t, int64(7), resp.Content.BlogPosts.Published)
	assert.Equal(t, int64(6), resp.Content.TeamMembers.Total)
	assert.Equal(t, int64(8), resp.Content.Testimonials.Active)
	assert.Equal(t, int64(3), resp.Content.Scholarships.Total)
}

func TestGetDashboardCachesWithinTTL(t *testing.T) {
	visitors := &fakeVisitorStats{total: 100, unique: 40}
	svc := newAnalyticsFixture(visitors, time.Minute)

	_, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	_, err = svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, visitors.calls)
}

func TestGetDashboardRecomputesAfterTTL(t *testing.T) {
	visitors := &fakeVisitorStats{total: 100, unique: 40}
	svc := newAnalyticsFixture(visitors, time.Nanosecond)

	_, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, visitors.calls)
}
