package get_availability

import (
	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// buildSnapshots считает снимок доступности по каждому типу ресурса,
// который кафе предлагает. Занятость - через ту же общую функцию
// domain.SumOverlappingQuantities, что и у валидатора вместимости:
// оба компонента сходятся в цифрах по построению.
func buildSnapshots(
	cafe *domain.Cafe,
	bookings []*domain.Booking,
	start types.TimeString,
	durationMinutes int,
) (map[domain.ResourceType]Snapshot, error) {
	booked, err := domain.SumOverlappingQuantities(bookings, start, durationMinutes)
	if err != nil {
		return nil, err
	}

	release, err := domain.EarliestReleaseTimes(bookings, start, durationMinutes)
	if err != nil {
		return nil, err
	}

	snapshots := make(map[domain.ResourceType]Snapshot)

	for _, rt := range domain.AllResourceTypes {
		if !cafe.Offers(rt) {
			continue
		}

		total := cafe.CapacityFor(rt)
		snap := Snapshot{
			Total:     total,
			Booked:    booked[rt],
			Available: total - booked[rt],
		}

		// Подсказка "освободится в ..." - только если ресурс кем-то занят
		// на это окно; конец может уходить за полночь, FromMinutes
		// заворачивает его на циферблат следующего дня
		if snap.Booked > 0 {
			if endMin, ok := release[rt]; ok {
				next := types.FromMinutes(endMin)
				snap.NextAvailableAt = &next
			}
		}

		snapshots[rt] = snap
	}

	return snapshots, nil
}
