package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	apperrors "eventmap-api/core/errors"
	"eventmap-api/modules/event/dto"
	"eventmap-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	records   []entity.Event
	listCalls int
	updates   map[string]*dto.UpdateEventRequest
	deletes   []string
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{updates: map[string]*dto.UpdateEventRequest{}}
}

func (f *fakeEventRepo) List(ctx context.Context) ([]entity.Event, error) {
	f.listCalls++
	return f.records, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	f.records = append(f.records, *event)
	created := *event
	return &created, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, updates *dto.UpdateEventRequest) error {
	f.updates[id] = updates
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	f.data[key] = value
}

func (f *fakeCache) Delete(ctx context.Context, key string) {
	delete(f.data, key)
}

func TestCreateAssignsIDAndKeepsLocationReference(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeCache())

	created, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name:       "Opening Night",
		LocationID: "loc-42",
		StartTime:  "2026-09-01T18:00:00Z",
		EndTime:    "2026-09-01T22:00:00Z",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "loc-42", created.LocationID)
}

func TestCreateMissingRequiredFields(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), newFakeCache())

	tests := []struct {
		name string
		req  *dto.CreateEventRequest
	}{
		{"missing name", &dto.CreateEventRequest{LocationID: "l", StartTime: "s", EndTime: "e"}},
		{"missing locationId", &dto.CreateEventRequest{Name: "n", StartTime: "s", EndTime: "e"}},
		{"missing startTime", &dto.CreateEventRequest{Name: "n", LocationID: "l", EndTime: "e"}},
		{"missing endTime", &dto.CreateEventRequest{Name: "n", LocationID: "l", StartTime: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrInvalidRequestData, appErr.Code)
		})
	}
}

func TestCreateDoesNotValidateTimeOrdering(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), newFakeCache())

	// endTime before startTime is stored verbatim, by contract
	_, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name:       "Backwards",
		LocationID: "loc-1",
		StartTime:  "2026-09-02T00:00:00Z",
		EndTime:    "2026-09-01T00:00:00Z",
	})
	assert.NoError(t, err)
}

func TestEventJSONUsesCamelCase(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeCache())

	created, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name:       "Opening Night",
		LocationID: "loc-42",
		StartTime:  "2026-09-01T18:00:00Z",
		EndTime:    "2026-09-01T22:00:00Z",
	})
	require.NoError(t, err)

	data, err := json.Marshal(created)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "loc-42", decoded["locationId"])
	assert.Contains(t, decoded, "startTime")
	assert.Contains(t, decoded, "endTime")
	assert.NotContains(t, decoded, "location_id")
	assert.NotContains(t, decoded, "start_time")
}

func TestListServedFromCache(t *testing.T) {
	repo := newFakeEventRepo()
	repo.records = []entity.Event{{ID: "evt-1", Name: "Opening Night", LocationID: "loc-42"}}
	svc := NewEventService(repo, newFakeCache())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestUpdatePassesOnlyProvidedFields(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeCache())

	loc := "loc-7"
	err := svc.Update(context.Background(), "evt-1", &dto.UpdateEventRequest{LocationID: &loc})
	require.NoError(t, err)

	got := repo.updates["evt-1"]
	require.NotNil(t, got)
	assert.Equal(t, "loc-7", *got.LocationID)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.EndTime)
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeCache())

	require.NoError(t, svc.Remove(context.Background(), "evt-1"))
	require.NoError(t, svc.Remove(context.Background(), "evt-1"))
	assert.Equal(t, []string{"evt-1", "evt-1"}, repo.deletes)
}
