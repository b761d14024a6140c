package domain

import "github.com/GCN-Platform/GCN-BookingService/pkg/types"

// AvailabilitySnapshot is a derived, non-persisted view of one resource type
// at one cafe/date/time/duration. Valid only at the instant it was computed.
type AvailabilitySnapshot struct {
	ResourceType ResourceType
	Total        int
	Booked       int
	// Available = Total - Booked, намеренно без обрезания в ноль:
	// отрицательное значение - сигнал овербукинга для операторов
	Available       int
	NextAvailableAt *types.TimeString
}

// IsFull returns true if no units of the resource type are free
func (s *AvailabilitySnapshot) IsFull() bool {
	return s.Available <= 0
}

// SumOverlappingQuantities суммирует количества по типам ресурсов из строк
// всех активных бронирований, пересекающихся с запрошенным окном.
// Каждое бронирование занимает интервал своей собственной длительности -
// обе стороны проверки пересечения симметричны.
//
// Это единственная точка подсчёта занятости: агрегатор доступности и
// валидатор вместимости обязаны сходиться в цифрах, поэтому оба зовут её.
func SumOverlappingQuantities(bookings []*Booking, start types.TimeString, durationMinutes int) (map[ResourceType]int, error) {
	booked := make(map[ResourceType]int)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		overlaps, err := types.Overlaps(start, durationMinutes, booking.StartTime, booking.DurationMinutes)
		if err != nil {
			return nil, err
		}
		if !overlaps {
			continue
		}

		for _, line := range booking.Lines {
			booked[line.ResourceType] += line.Quantity
		}
	}

	return booked, nil
}

// EarliestReleaseTimes возвращает для каждого типа ресурса минуту окончания
// самого раннего из пересекающихся бронирований, удерживающих этот тип.
// Используется для подсказки "освободится в ..." по полностью занятым ресурсам.
func EarliestReleaseTimes(bookings []*Booking, start types.TimeString, durationMinutes int) (map[ResourceType]int, error) {
	earliest := make(map[ResourceType]int)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		overlaps, err := types.Overlaps(start, durationMinutes, booking.StartTime, booking.DurationMinutes)
		if err != nil {
			return nil, err
		}
		if !overlaps {
			continue
		}

		startMin, err := booking.StartTime.Minutes()
		if err != nil {
			return nil, err
		}
		// Конец без заворота: значения >= 1440 допустимы для сравнения,
		// в циферблат их переводит types.FromMinutes на выдаче
		endMin := startMin + booking.DurationMinutes

		for _, line := range booking.Lines {
			current, ok := earliest[line.ResourceType]
			if !ok || endMin < current {
				earliest[line.ResourceType] = endMin
			}
		}
	}

	return earliest, nil
}
