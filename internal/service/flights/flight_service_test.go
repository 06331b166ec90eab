package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) AddFlight(ctx context.Context, flight domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) FindFlight(ctx context.Context, id int) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:          4,
			FromCity:    domain.CityDelhi,
			ToCity:      domain.CityMumbai,
			MaxCapacity: 150,
			FlightDate:  domain.NewDate(2024, time.March, 15),
			Duration:    2.25,
		},
	}
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, repository.NewMemoryStore(), zap.NewNop(), WithCache(mockCache))

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("ListFlights", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, repository.NewMemoryStore(), zap.NewNop(), WithCache(mockCache))

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(flights, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ListFlights", mock.Anything)
	mockCache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestFlightService_List_CacheError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, repository.NewMemoryStore(), zap.NewNop(), WithCache(mockCache))

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), errors.New("cache error")).Once()
	mockRepo.On("ListFlights", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, repository.NewMemoryStore(), zap.NewNop(), WithCache(mockCache))

	ctx := context.Background()
	expectedErr := errors.New("store error")

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("ListFlights", ctx).Return([]domain.Flight{}, expectedErr).Once()

	result, err := service.List(ctx)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockCache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestFlightService_List_WithoutCache(t *testing.T) {
	store := repository.NewMemoryStore()
	service := NewFlightService(store, store, zap.NewNop())

	ctx := context.Background()
	for _, f := range sampleFlights() {
		require.NoError(t, service.AddFlight(ctx, f))
	}

	result, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleFlights(), result)
}

func TestFlightService_AddFlight_InvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, repository.NewMemoryStore(), zap.NewNop(), WithCache(mockCache))

	ctx := context.Background()
	flight := sampleFlights()[0]

	mockRepo.On("AddFlight", ctx, flight).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(errors.New("redis down")).Once()

	assert.NoError(t, service.AddFlight(ctx, flight))

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_AddFlight_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, repository.NewMemoryStore(), zap.NewNop(), WithCache(mockCache))

	ctx := context.Background()
	flight := sampleFlights()[0]
	expectedErr := errors.New("store error")

	mockRepo.On("AddFlight", ctx, flight).Return(expectedErr).Once()

	assert.Equal(t, expectedErr, service.AddFlight(ctx, flight))
	mockCache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}

func TestFlightService_ShortestDuration(t *testing.T) {
	store := repository.NewMemoryStore()
	service := NewFlightService(store, store, zap.NewNop())
	ctx := context.Background()

	d, err := service.ShortestDuration(ctx, domain.CityDelhi, domain.CityMumbai)
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)

	require.NoError(t, service.AddFlight(ctx, domain.Flight{ID: 1, FromCity: domain.CityDelhi, ToCity: domain.CityMumbai, Duration: 3}))
	require.NoError(t, service.AddFlight(ctx, domain.Flight{ID: 2, FromCity: domain.CityDelhi, ToCity: domain.CityMumbai, Duration: 2.5}))
	require.NoError(t, service.AddFlight(ctx, domain.Flight{ID: 3, FromCity: domain.CityMumbai, ToCity: domain.CityDelhi, Duration: 1}))
	require.NoError(t, service.AddFlight(ctx, domain.Flight{ID: 4, FromCity: domain.CityDelhi, ToCity: domain.CityAgra, Duration: 0.5}))

	d, err = service.ShortestDuration(ctx, domain.CityDelhi, domain.CityMumbai)
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)

	d, err = service.ShortestDuration(ctx, domain.CityMumbai, domain.CityDelhi)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = service.ShortestDuration(ctx, domain.CityAgra, domain.CityDelhi)
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)
}

func TestFlightService_FareAndRevenueTrackBookings(t *testing.T) {
	store := repository.NewMemoryStore()
	service := NewFlightService(store, store, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, service.AddFlight(ctx, domain.Flight{ID: 1, MaxCapacity: 3}))
	for id := 1; id <= 3; id++ {
		require.NoError(t, store.SavePassenger(ctx, domain.Passenger{ID: id}))
	}

	for booked := 0; booked <= 3; booked++ {
		if booked > 0 {
			require.NoError(t, store.Book(ctx, 1, booked))
		}
		fare, err := service.CalculateFare(ctx, 1)
		require.NoError(t, err)
		revenue, err := service.CalculateRevenue(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 3000+50*booked, fare)
		assert.Equal(t, 50*booked, revenue)
		assert.Equal(t, 3000, fare-revenue)
	}

	require.NoError(t, store.Cancel(ctx, 1, 2))
	fare, _ := service.CalculateFare(ctx, 1)
	revenue, _ := service.CalculateRevenue(ctx, 1)
	assert.Equal(t, 3100, fare)
	assert.Equal(t, 100, revenue)

	// Unknown flights price as if empty.
	fare, _ = service.CalculateFare(ctx, 99)
	assert.Equal(t, 3000, fare)
}

func TestFlightService_WithPricing(t *testing.T) {
	store := repository.NewMemoryStore()
	service := NewFlightService(store, store, zap.NewNop(), WithPricing(Pricing{BaseFare: 100, PerBooking: 7}))
	ctx := context.Background()

	fare, err := service.CalculateFare(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, fare)
	assert.Equal(t, 114, service.pricing.Fare(2))
	assert.Equal(t, 14, service.pricing.Revenue(2))
}
