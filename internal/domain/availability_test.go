package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

func booking(status BookingStatus, start types.TimeString, duration int, lines ...BookingLine) *Booking {
	return &Booking{
		Status:          status,
		StartTime:       start,
		DurationMinutes: duration,
		Lines:           lines,
	}
}

func TestSumOverlappingQuantities(t *testing.T) {
	bookings := []*Booking{
		booking(StatusConfirmed, "10:00", 60, BookingLine{ResourcePS5, 2}),
		booking(StatusPending, "10:30", 120, BookingLine{ResourcePS5, 1}, BookingLine{ResourcePC, 3}),
		// Впритык к окну - не пересекается
		booking(StatusConfirmed, "11:00", 60, BookingLine{ResourcePS5, 4}),
		// Отменено - не считается
		booking(StatusCancelledByUser, "10:00", 60, BookingLine{ResourcePS5, 5}),
		booking(StatusNoShow, "10:00", 60, BookingLine{ResourcePC, 5}),
	}

	booked, err := SumOverlappingQuantities(bookings, "10:00", 60)
	require.NoError(t, err)

	assert.Equal(t, 3, booked[ResourcePS5])
	assert.Equal(t, 3, booked[ResourcePC])
	assert.Zero(t, booked[ResourceVR])
}

func TestSumOverlappingQuantitiesUsesEachBookingDuration(t *testing.T) {
	// Длинное бронирование, начавшееся задолго до окна, всё ещё держит места
	bookings := []*Booking{
		booking(StatusConfirmed, "08:00", 480, BookingLine{ResourcePC, 2}),
	}

	booked, err := SumOverlappingQuantities(bookings, "14:00", 60)
	require.NoError(t, err)
	assert.Equal(t, 2, booked[ResourcePC])

	// А короткое, закончившееся до окна - нет
	booked, err = SumOverlappingQuantities(bookings, "16:00", 60)
	require.NoError(t, err)
	assert.Zero(t, booked[ResourcePC])
}

func TestSumOverlappingQuantitiesEmpty(t *testing.T) {
	booked, err := SumOverlappingQuantities(nil, "10:00", 60)
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestSumOverlappingQuantitiesInvalidStart(t *testing.T) {
	bookings := []*Booking{
		booking(StatusConfirmed, "10:00", 60, BookingLine{ResourcePS5, 1}),
	}
	_, err := SumOverlappingQuantities(bookings, "bad time", 60)
	assert.Error(t, err)
}

func TestEarliestReleaseTimes(t *testing.T) {
	bookings := []*Booking{
		booking(StatusConfirmed, "10:00", 60, BookingLine{ResourcePS5, 2}),  // до 11:00
		booking(StatusConfirmed, "10:30", 120, BookingLine{ResourcePS5, 1}), // до 12:30
		booking(StatusConfirmed, "10:00", 30, BookingLine{ResourceVR, 1}),   // до 10:30
		booking(StatusCancelledByCafe, "10:00", 15, BookingLine{ResourcePS5, 9}),
	}

	release, err := EarliestReleaseTimes(bookings, "10:00", 60)
	require.NoError(t, err)

	assert.Equal(t, 11*60, release[ResourcePS5])
	assert.Equal(t, 10*60+30, release[ResourceVR])

	_, ok := release[ResourcePC]
	assert.False(t, ok)
}

func TestEarliestReleaseTimesPastMidnight(t *testing.T) {
	// Конец за полночь не заворачивается на этапе подсчёта
	bookings := []*Booking{
		booking(StatusConfirmed, "23:00", 120, BookingLine{ResourcePC, 1}),
	}

	release, err := EarliestReleaseTimes(bookings, "23:30", 30)
	require.NoError(t, err)
	assert.Equal(t, 25*60, release[ResourcePC])
}
