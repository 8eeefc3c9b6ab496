package services

import (
	"context"
	"errors"
	"testing"

	"github.com/popcornshop/dashboard/internal/database"
	"github.com/popcornshop/dashboard/internal/typeform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIngestStorage struct {
	orders    map[string]database.OrderDB
	createErr error
}

func newFakeIngestStorage() *fakeIngestStorage {
	return &fakeIngestStorage{orders: map[string]database.OrderDB{}}
}

func (s *fakeIngestStorage) FindOrder(_ context.Context, uuid string) (*database.OrderDB, error) {
	order, ok := s.orders[uuid]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (s *fakeIngestStorage) CreateOrder(_ context.Context, order database.OrderDB) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.orders[order.UUID]; ok {
		return database.ErrDuplicateOrder
	}
	s.orders[order.UUID] = order
	return nil
}

func (s *fakeIngestStorage) CountOrders(_ context.Context) (int64, error) {
	return int64(len(s.orders)), nil
}

type fakeFetcher struct {
	page *typeform.ResponsePage
	err  error
}

func (f *fakeFetcher) FetchResponses(context.Context, string) (*typeform.ResponsePage, error) {
	return f.page, f.err
}

func responseWithID(id string) typeform.Response {
	response := fullResponse()
	response.ResponseID = id
	return response
}

func TestIngest(t *testing.T) {
	storage := newFakeIngestStorage()
	fetcher := &fakeFetcher{page: &typeform.ResponsePage{
		Items: []typeform.Response{
			responseWithID("resp-1"),
			responseWithID("resp-2"),
			responseWithID("resp-3"),
		},
	}}

	service := NewIngestService(storage, fetcher, NewMapperService(DefaultFieldMap()))

	result, err := service.Ingest(context.Background(), "form-id")
	require.NoError(t, err)

	assert.Equal(t, "Orders ingested successfully", result.Message)
	assert.Equal(t, 3, result.NewOrdersCount)
	assert.Equal(t, 0, result.SkippedCount)
	assert.Equal(t, int64(3), result.TotalInDatabase)
	assert.Len(t, result.NewOrders, 3)
	assert.Empty(t, result.SkippedUUIDs)

	stored, err := storage.FindOrder(context.Background(), "resp-2")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.Equal(t, "Inquiry", string(stored.Status.OrderStatus))
}

func TestIngestSkipsExistingOrders(t *testing.T) {
	storage := newFakeIngestStorage()
	fetcher := &fakeFetcher{page: &typeform.ResponsePage{
		Items: []typeform.Response{
			responseWithID("resp-1"),
			responseWithID("resp-2"),
			responseWithID("resp-3"),
		},
	}}

	service := NewIngestService(storage, fetcher, NewMapperService(DefaultFieldMap()))

	// Seed one response, then re-run the whole batch: the seeded one must
	// be skipped, not refreshed.
	_, err := service.Ingest(context.Background(), "form-id")
	require.NoError(t, err)
	seeded := storage.orders["resp-1"]
	seeded.Email = "edited@example.com"
	storage.orders["resp-1"] = seeded

	result, err := service.Ingest(context.Background(), "form-id")
	require.NoError(t, err)

	assert.Equal(t, 0, result.NewOrdersCount)
	assert.Equal(t, 3, result.SkippedCount)
	assert.Equal(t, int64(3), result.TotalInDatabase)
	assert.ElementsMatch(t, []string{"resp-1", "resp-2", "resp-3"}, result.SkippedUUIDs)
	assert.Equal(t, "edited@example.com", storage.orders["resp-1"].Email)
}

func TestIngestSkipsUnmappableResponses(t *testing.T) {
	broken := responseWithID("resp-broken")
	broken.Answers = broken.Answers[:2]

	storage := newFakeIngestStorage()
	fetcher := &fakeFetcher{page: &typeform.ResponsePage{
		Items: []typeform.Response{
			broken,
			responseWithID("resp-ok"),
		},
	}}

	service := NewIngestService(storage, fetcher, NewMapperService(DefaultFieldMap()))

	result, err := service.Ingest(context.Background(), "form-id")
	require.NoError(t, err)

	assert.Equal(t, 1, result.NewOrdersCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, []string{"resp-broken"}, result.SkippedUUIDs)
	assert.Equal(t, int64(1), result.TotalInDatabase)
}

func TestIngestSkipsFailedInserts(t *testing.T) {
	storage := newFakeIngestStorage()
	storage.createErr = errors.New("connection reset")
	fetcher := &fakeFetcher{page: &typeform.ResponsePage{
		Items: []typeform.Response{responseWithID("resp-1")},
	}}

	service := NewIngestService(storage, fetcher, NewMapperService(DefaultFieldMap()))

	result, err := service.Ingest(context.Background(), "form-id")
	require.NoError(t, err)

	assert.Equal(t, 0, result.NewOrdersCount)
	assert.Equal(t, []string{"resp-1"}, result.SkippedUUIDs)
}

func TestIngestRequiresFormID(t *testing.T) {
	service := NewIngestService(newFakeIngestStorage(), &fakeFetcher{}, NewMapperService(DefaultFieldMap()))

	_, err := service.Ingest(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoFormID)
}

func TestIngestAbortsOnFetchFailure(t *testing.T) {
	fetchErr := errors.New("upstream down")
	service := NewIngestService(newFakeIngestStorage(), &fakeFetcher{err: fetchErr}, NewMapperService(DefaultFieldMap()))

	_, err := service.Ingest(context.Background(), "form-id")
	assert.ErrorIs(t, err, fetchErr)
}
