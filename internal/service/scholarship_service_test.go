package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
)

func TestListScholarshipsEmpty(t *testing.T) {
	f := newFixture(t)
	items, err := f.scholarships.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCreateScholarshipDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.scholarships.Create(ctx, "mod@x.com", domain.Scholarship{
		Name:            "Global Merit",
		Category:        "Full fund",
		UniversityName:  "Uni",
		ApplicationFees: 50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "mod@x.com", created.PostedBy)
	assert.False(t, created.PostDate.IsZero())
	assert.Equal(t, []events.EventType{events.EventScholarshipCreated}, f.dispatcher.types())

	got, err := f.scholarships.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	items, err := f.scholarships.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateScholarshipValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.scholarships.Create(context.Background(), "mod@x.com", domain.Scholarship{Name: "No category"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = f.scholarships.Create(context.Background(), "mod@x.com", domain.Scholarship{Name: "n", Category: "c", TuitionFees: -1})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Empty(t, f.dispatcher.types())
}

func TestGetScholarshipErrors(t *testing.T) {
	f := newFixture(t)
	_, err := f.scholarships.Get(context.Background(), "not-an-id")
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = f.scholarships.Get(context.Background(), "6f1c1b92-2d5c-4d8e-9d8b-5f0a1f3a9b11")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

type stubCache struct {
	list        []domain.Scholarship
	hasList     bool
	invalidated int
	setLists    int
}

func (c *stubCache) GetList(context.Context) ([]domain.Scholarship, bool, error) {
	return c.list, c.hasList, nil
}

func (c *stubCache) SetList(_ context.Context, items []domain.Scholarship) error {
	c.setLists++
	c.list, c.hasList = items, true
	return nil
}

func (c *stubCache) Get(context.Context, string) (*domain.Scholarship, bool, error) {
	return nil, false, nil
}

func (c *stubCache) Set(context.Context, *domain.Scholarship) error { return nil }

func (c *stubCache) Invalidate(context.Context, ...string) error {
	c.invalidated++
	c.list, c.hasList = nil, false
	return nil
}

func TestListReadsThroughCache(t *testing.T) {
	f := newFixture(t)
	cache := &stubCache{}
	svc := NewScholarshipService(ScholarshipDependencies{
		ScholarshipRepo: f.store.Scholarships,
		Cache:           cache,
		Dispatcher:      f.dispatcher,
		Logger:          zap.NewNop(),
	})
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.setLists)

	_, err = svc.Create(ctx, "mod@x.com", domain.Scholarship{Name: "n", Category: "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, cache.setLists)
}
