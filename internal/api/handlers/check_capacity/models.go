package check_capacity

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	checkCapacity "github.com/GCN-Platform/GCN-BookingService/internal/usecase/check_capacity"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// BookingLineRequest строка корзины: тип ресурса и количество
type BookingLineRequest struct {
	ResourceType string `json:"resourceType"`
	Quantity     int    `json:"quantity"`
}

// CheckCapacityRequest HTTP request model
type CheckCapacityRequest struct {
	CafeRef         string               `json:"cafeRef"`
	BookingDate     string               `json:"bookingDate"`
	StartTime       string               `json:"startTime"`
	DurationMinutes int                  `json:"durationMinutes"`
	Lines           []BookingLineRequest `json:"lines"`
}

// CheckCapacityResponse HTTP response model.
// Поле rejection присутствует только при отказе.
type CheckCapacityResponse struct {
	OK        bool               `json:"ok"`
	Rejection *RejectionResponse `json:"rejection,omitempty"`
}

// RejectionResponse структурированная причина отказа
type RejectionResponse struct {
	Code         string `json:"code"`
	ResourceType string `json:"resourceType,omitempty"`
	Remaining    int    `json:"remaining,omitempty"`
	Message      string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckCapacityRequest) ToUseCaseRequest() (*checkCapacity.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	duration := r.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSessionMinutes
	}

	lines := make([]domain.BookingLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = domain.BookingLine{
			ResourceType: domain.ResourceType(line.ResourceType),
			Quantity:     line.Quantity,
		}
	}

	return &checkCapacity.Request{
		CafeRef:         r.CafeRef,
		Date:            bookingDate,
		StartTime:       startTime,
		DurationMinutes: duration,
		Lines:           lines,
	}, nil
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(result *checkCapacity.Result) *CheckCapacityResponse {
	resp := &CheckCapacityResponse{OK: result.OK}
	if result.Rejection != nil {
		resp.Rejection = &RejectionResponse{
			Code:         string(result.Rejection.Code),
			ResourceType: string(result.Rejection.ResourceType),
			Remaining:    result.Rejection.Remaining,
			Message:      result.Rejection.Message,
		}
	}
	return resp
}
