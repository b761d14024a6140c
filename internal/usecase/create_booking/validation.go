package create_booking

import (
	"fmt"
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// validateRequest проверяет форму запроса до любого обращения к хранилищу
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user ID is required", ErrInvalidInput)
	}
	if req.CafeRef == "" {
		return fmt.Errorf("%w: cafe reference is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes < domain.MinBookingDurationMinutes ||
		req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBookingDurationMinutes, domain.MaxBookingDurationMinutes)
	}
	if req.DurationMinutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidInput, domain.DurationStepMinutes)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: booking must contain at least one item", ErrInvalidInput)
	}
	return nil
}

// validateTiming проверяет, что слот не в прошлом и соблюдено минимальное
// время предуведомления. Даты сравниваются по календарным компонентам
// год/месяц/день в зоне сервера; дата бронирования приходит без времени,
// поэтому усечение к границе суток по UTC здесь не годится.
func validateTiming(req *Request, now time.Time, minNoticeMinutes int) error {
	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: booking date is in the past", ErrInvalidDate)
	}

	if isSameDay(req.Date, now) {
		nowMin, err := types.NewTimeString(now).Minutes()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		startMin, err := req.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		// Минуты без заворота: слот у границы суток, не проходящий по
		// предуведомлению сегодня, должен бронироваться на завтра
		if startMin < nowMin+minNoticeMinutes {
			return fmt.Errorf("%w: slot must start at least %d minutes from now",
				ErrTooLateToBook, minNoticeMinutes)
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	if y != ny {
		return y < ny
	}
	if m != nm {
		return m < nm
	}
	return d < nd
}
