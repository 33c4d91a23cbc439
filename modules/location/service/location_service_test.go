package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	apperrors "eventmap-api/core/errors"
	"eventmap-api/modules/location/dto"
	"eventmap-api/modules/location/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocationRepo struct {
	records   []entity.Location
	listErr   error
	createErr error
	listCalls int
	updates   map[string]*dto.UpdateLocationRequest
	deletes   []string
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{updates: map[string]*dto.UpdateLocationRequest{}}
}

func (f *fakeLocationRepo) List(ctx context.Context) ([]entity.Location, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeLocationRepo) Create(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.records = append(f.records, *location)
	created := *location
	return &created, nil
}

func (f *fakeLocationRepo) Update(ctx context.Context, id string, updates *dto.UpdateLocationRequest) error {
	f.updates[id] = updates
	return nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeCache struct {
	data    map[string]string
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	f.data[key] = value
}

func (f *fakeCache) Delete(ctx context.Context, key string) {
	f.deletes = append(f.deletes, key)
	delete(f.data, key)
}

func coord(v float64) *entity.Coordinate {
	c := entity.Coordinate(v)
	return &c
}

func TestCreateAssignsIDAndCoercesCoordinates(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo, newFakeCache())

	// coordinates arrive as strings on the wire and must come out numeric
	var req dto.CreateLocationRequest
	body := `{"name":"Hall A","lat":"28.545","lng":"77.19"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	created, err := svc.Create(context.Background(), &req)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "Hall A", created.Name)
	assert.Equal(t, entity.Coordinate(28.545), created.Lat)
	assert.Equal(t, entity.Coordinate(77.19), created.Lng)
}

func TestCreateNoDeduplication(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo, newFakeCache())

	req := &dto.CreateLocationRequest{Name: "Hall A", Lat: coord(28.545), Lng: coord(77.19)}
	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.records, 2)
}

func TestCreateMissingRequiredFields(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo(), newFakeCache())

	tests := []struct {
		name string
		req  *dto.CreateLocationRequest
	}{
		{"missing name", &dto.CreateLocationRequest{Lat: coord(1), Lng: coord(2)}},
		{"missing lat", &dto.CreateLocationRequest{Name: "x", Lng: coord(2)}},
		{"missing lng", &dto.CreateLocationRequest{Name: "x", Lat: coord(1)}},
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

func TestCreateInvalidatesListCache(t *testing.T) {
	repo := newFakeLocationRepo()
	c := newFakeCache()
	svc := NewLocationService(repo, c)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateLocationRequest{Name: "x", Lat: coord(1), Lng: coord(2)})
	require.NoError(t, err)
	assert.NotEmpty(t, c.deletes)
}

func TestListServedFromCache(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.records = []entity.Location{{ID: "loc-1", Name: "Hall A", Lat: 1, Lng: 2}}
	svc := NewLocationService(repo, newFakeCache())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo(), newFakeCache())

	locations, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestListStoreErrorIsDatabaseError(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.listErr = assert.AnError
	svc := NewLocationService(repo, newFakeCache())

	_, err := svc.List(context.Background())
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrDatabase, appErr.Code)
}

func TestUpdatePassesOnlyProvidedFields(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo, newFakeCache())

	name := "Renamed"
	err := svc.Update(context.Background(), "loc-1", &dto.UpdateLocationRequest{Name: &name})
	require.NoError(t, err)

	got := repo.updates["loc-1"]
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", *got.Name)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.Lat)
	assert.Nil(t, got.Lng)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo(), newFakeCache())

	name := "x"
	err := svc.Update(context.Background(), "does-not-exist", &dto.UpdateLocationRequest{Name: &name})
	assert.NoError(t, err)
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo, newFakeCache())

	require.NoError(t, svc.Remove(context.Background(), "loc-1"))
	require.NoError(t, svc.Remove(context.Background(), "loc-1"))
	assert.Equal(t, []string{"loc-1", "loc-1"}, repo.deletes)
}
