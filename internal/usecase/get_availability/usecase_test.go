package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
	"github.com/GCN-Platform/GCN-BookingService/internal/usecase/check_capacity"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

type fakeCafeRepo struct {
	cafe *domain.Cafe
	err  error
}

func (f *fakeCafeRepo) Resolve(_ context.Context, _ string) (*domain.Cafe, error) {
	return f.cafe, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByCafeAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCafe() *domain.Cafe {
	return &domain.Cafe{
		ID:   7,
		Slug: "arena-central",
		Capacities: map[domain.ResourceType]int{
			domain.ResourcePS5: 4,
			domain.ResourcePC:  10,
			domain.ResourceVR:  2,
		},
	}
}

func testRequest() *Request {
	return &Request{
		CafeRef:         "arena-central",
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		DurationMinutes: 60,
	}
}

func confirmedBooking(start types.TimeString, duration int, lines ...domain.BookingLine) *domain.Booking {
	return &domain.Booking{
		Status:          domain.StatusConfirmed,
		StartTime:       start,
		DurationMinutes: duration,
		Lines:           lines,
	}
}

func TestExecuteBuildsSnapshotPerOfferedResource(t *testing.T) {
	bookings := []*domain.Booking{
		confirmedBooking("17:30", 60, domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 3}),
		confirmedBooking("18:00", 120, domain.BookingLine{ResourceType: domain.ResourceVR, Quantity: 2}),
	}
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.CafeID)
	assert.Equal(t, "arena-central", resp.CafeSlug)
	// Только типы, которые кафе предлагает
	assert.Len(t, resp.Resources, 3)

	ps5 := resp.Resources[domain.ResourcePS5]
	assert.Equal(t, 4, ps5.Total)
	assert.Equal(t, 3, ps5.Booked)
	assert.Equal(t, 1, ps5.Available)
	require.NotNil(t, ps5.NextAvailableAt)
	assert.Equal(t, types.TimeString("18:30"), *ps5.NextAvailableAt)

	vr := resp.Resources[domain.ResourceVR]
	assert.Equal(t, 2, vr.Total)
	assert.Equal(t, 2, vr.Booked)
	assert.Equal(t, 0, vr.Available)
	require.NotNil(t, vr.NextAvailableAt)
	assert.Equal(t, types.TimeString("20:00"), *vr.NextAvailableAt)

	pc := resp.Resources[domain.ResourcePC]
	assert.Equal(t, 10, pc.Available)
	assert.Nil(t, pc.NextAvailableAt)
}

func TestExecuteCafeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{err: cafeRepo.ErrCafeNotFound}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	req := testRequest()
	req.StartTime = "not a time"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteStorageErrorYieldsEmptyMap(t *testing.T) {
	// Сбой чтения бронирований не превращается в "всё свободно":
	// ответ - пустая карта, без ошибки наружу
	uc := NewUseCase(
		&fakeCafeRepo{cafe: testCafe()},
		&fakeBookingRepo{err: errors.New("connection reset")},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Resources)
	assert.Empty(t, resp.Resources)
}

func TestExecuteNegativeAvailableSignalsOverbooking(t *testing.T) {
	bookings := []*domain.Booking{
		confirmedBooking("18:00", 60, domain.BookingLine{ResourceType: domain.ResourceVR, Quantity: 3}),
	}
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	vr := resp.Resources[domain.ResourceVR]
	assert.Equal(t, -1, vr.Available)
}

func TestAggregatorAgreesWithValidator(t *testing.T) {
	// Если агрегатор показывает N свободных мест, валидатор обязан принять
	// запрос ровно на N и отклонить N+1
	cafe := testCafe()
	bookings := []*domain.Booking{
		confirmedBooking("17:00", 90, domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 1}),
		confirmedBooking("18:30", 30, domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 2}),
	}

	uc := NewUseCase(&fakeCafeRepo{cafe: cafe}, &fakeBookingRepo{bookings: bookings}, nopLogger{})
	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	available := resp.Resources[domain.ResourcePS5].Available
	require.Equal(t, 1, available)

	fits := check_capacity.EvaluateCart(cafe, bookings, "18:00", 60,
		map[domain.ResourceType]int{domain.ResourcePS5: available})
	assert.Nil(t, fits)

	overflow := check_capacity.EvaluateCart(cafe, bookings, "18:00", 60,
		map[domain.ResourceType]int{domain.ResourcePS5: available + 1})
	assert.NotNil(t, overflow)
}
