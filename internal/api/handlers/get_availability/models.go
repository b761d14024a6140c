package get_availability

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	getAvailability "github.com/GCN-Platform/GCN-BookingService/internal/usecase/get_availability"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// ResourceAvailability HTTP модель доступности одного типа ресурса
type ResourceAvailability struct {
	Total     int    `json:"total"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	// NextAvailableAt заполняется, только если ресурс занят на это окно
	NextAvailableAt *string `json:"nextAvailableAt,omitempty"`
}

// AvailabilityResponse HTTP модель снимка доступности
type AvailabilityResponse struct {
	CafeID          int64                           `json:"cafeId"`
	CafeSlug        string                          `json:"cafeSlug,omitempty"`
	Date            string                          `json:"date"`
	StartTime       string                          `json:"startTime"`
	DurationMinutes int                             `json:"durationMinutes"`
	Resources       map[string]ResourceAvailability `json:"resources"`
}

// ToUseCaseRequest собирает модель use case из параметров запроса.
// duration по умолчанию - стандартная сессия; время принимает и 12-часовой,
// и 24-часовой формат.
func ToUseCaseRequest(cafeRef, dateStr, timeStr string, durationMinutes int) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	if durationMinutes == 0 {
		durationMinutes = domain.DefaultSessionMinutes
	}

	return &getAvailability.Request{
		CafeRef:         cafeRef,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		CafeID:          resp.CafeID,
		CafeSlug:        resp.CafeSlug,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Resources:       make(map[string]ResourceAvailability, len(resp.Resources)),
	}

	for rt, snap := range resp.Resources {
		item := ResourceAvailability{
			Total:     snap.Total,
			Booked:    snap.Booked,
			Available: snap.Available,
		}
		if snap.NextAvailableAt != nil {
			next := snap.NextAvailableAt.String()
			item.NextAvailableAt = &next
		}
		out.Resources[string(rt)] = item
	}

	return out
}
