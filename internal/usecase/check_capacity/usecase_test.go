package check_capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
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
		ID:   1,
		Slug: "arena-central",
		Capacities: map[domain.ResourceType]int{
			domain.ResourcePS5: 4,
			domain.ResourcePC:  10,
		},
	}
}

func testRequest(lines ...domain.BookingLine) *Request {
	return &Request{
		CafeRef:         "arena-central",
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		DurationMinutes: 60,
		Lines:           lines,
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

func TestExecuteAcceptsWhenCapacityFits(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 4},
	))

	assert.True(t, result.OK)
	assert.Nil(t, result.Rejection)
}

func TestExecuteRejectsOverCapacity(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 5},
	))

	require.False(t, result.OK)
	require.NotNil(t, result.Rejection)
	assert.Equal(t, CodeCapacityExceeded, result.Rejection.Code)
	assert.Equal(t, domain.ResourcePS5, result.Rejection.ResourceType)
	assert.Equal(t, 4, result.Rejection.Remaining)
	// Сообщение называет ресурс и остаток мест
	assert.Contains(t, result.Rejection.Message, "PlayStation 5")
	assert.Contains(t, result.Rejection.Message, "4")
}

func TestExecuteCountsOverlappingBookings(t *testing.T) {
	bookings := []*domain.Booking{
		confirmedBooking("17:30", 60, domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 3}),
	}
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{bookings: bookings}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 2},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeCapacityExceeded, result.Rejection.Code)
	assert.Equal(t, 1, result.Rejection.Remaining)
	assert.Contains(t, result.Rejection.Message, "only 1 available")
}

func TestExecuteFullyBookedMessage(t *testing.T) {
	bookings := []*domain.Booking{
		confirmedBooking("18:00", 60, domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 4}),
	}
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{bookings: bookings}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 1},
	))

	require.False(t, result.OK)
	assert.Contains(t, result.Rejection.Message, "none available")
}

func TestExecuteIgnoresNonOverlappingAndInactive(t *testing.T) {
	bookings := []*domain.Booking{
		// Закончилось ровно к началу окна
		confirmedBooking("17:00", 60, domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 4}),
		// Отменено
		{
			Status:          domain.StatusCancelledByUser,
			StartTime:       "18:00",
			DurationMinutes: 60,
			Lines:           []domain.BookingLine{{ResourceType: domain.ResourcePS5, Quantity: 4}},
		},
	}
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{bookings: bookings}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 4},
	))

	assert.True(t, result.OK)
}

func TestExecuteAggregatesDuplicateLines(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 3},
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 2},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeCapacityExceeded, result.Rejection.Code)
}

func TestExecuteRejectsEmptyCartBeforeStorage(t *testing.T) {
	// Репозитории с ошибками: до них дойти не должны
	uc := NewUseCase(
		&fakeCafeRepo{err: errors.New("unreachable")},
		&fakeBookingRepo{err: errors.New("unreachable")},
		nopLogger{},
	)

	result := uc.Execute(context.Background(), testRequest())

	require.False(t, result.OK)
	assert.Equal(t, CodeEmptyCart, result.Rejection.Code)
}

func TestExecuteRejectsUnknownResource(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: "jukebox", Quantity: 1},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeUnknownResource, result.Rejection.Code)
}

func TestExecuteRejectsNonPositiveQuantity(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 0},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeEmptyCart, result.Rejection.Code)
}

func TestExecuteCafeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCafeRepo{err: cafeRepo.ErrCafeNotFound}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 1},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeCafeNotFound, result.Rejection.Code)
}

func TestExecuteFailsClosedOnStorageError(t *testing.T) {
	// Ошибка чтения бронирований - отказ, а не молчаливый пропуск
	uc := NewUseCase(
		&fakeCafeRepo{cafe: testCafe()},
		&fakeBookingRepo{err: errors.New("connection reset")},
		nopLogger{},
	)

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourcePS5, Quantity: 1},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeCheckFailed, result.Rejection.Code)
	assert.Equal(t, msgCheckFailed, result.Rejection.Message)
}

func TestExecuteResourceNotOffered(t *testing.T) {
	// У кафе нет VR: вместимость 0, любой запрос отклоняется
	uc := NewUseCase(&fakeCafeRepo{cafe: testCafe()}, &fakeBookingRepo{}, nopLogger{})

	result := uc.Execute(context.Background(), testRequest(
		domain.BookingLine{ResourceType: domain.ResourceVR, Quantity: 1},
	))

	require.False(t, result.OK)
	assert.Equal(t, CodeCapacityExceeded, result.Rejection.Code)
	assert.Contains(t, result.Rejection.Message, "none available")
}
