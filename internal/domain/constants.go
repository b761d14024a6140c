package domain

// Default configuration values
const (
	DefaultSessionMinutes          = 60
	DefaultMinBookingNoticeMinutes = 30
)

// Business validation constants
const (
	MinBookingDurationMinutes = 30
	MaxBookingDurationMinutes = 480 // 8 hours
	DurationStepMinutes       = 30
	MaxNotesLength            = 500
	MaxCancelReasonLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, исключаемые из подсчёта занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByCafe,
	StatusNoShow,
}

// ActiveStatuses статусы, участвующие в подсчёте занятости
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
