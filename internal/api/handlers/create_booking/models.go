package create_booking

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	createBooking "github.com/GCN-Platform/GCN-BookingService/internal/usecase/create_booking"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// BookingLineRequest строка корзины: тип ресурса и количество
type BookingLineRequest struct {
	ResourceType string `json:"resourceType"`
	Quantity     int    `json:"quantity"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CafeRef         string               `json:"cafeRef"`     // Числовой ID или slug
	BookingDate     string               `json:"bookingDate"` // "2026-08-30"
	StartTime       string               `json:"startTime"`   // "19:30" или "7:30 pm"
	DurationMinutes int                  `json:"durationMinutes"`
	Lines           []BookingLineRequest `json:"lines"`
	Notes           string               `json:"notes,omitempty"`
}

// BookingLineResponse строка созданного бронирования
type BookingLineResponse struct {
	ResourceType string `json:"resourceType"`
	Quantity     int    `json:"quantity"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"userId"`
	CafeID          int64                 `json:"cafeId"`
	BookingDate     string                `json:"bookingDate"`
	StartTime       string                `json:"startTime"`
	DurationMinutes int                   `json:"durationMinutes"`
	Status          string                `json:"status"`
	Lines           []BookingLineResponse `json:"lines"`
	Notes           *string               `json:"notes,omitempty"`
	CreatedAt       string                `json:"createdAt"`
	UpdatedAt       string                `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время (12- или 24-часовой формат)
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.BookingLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = domain.BookingLine{
			ResourceType: domain.ResourceType(line.ResourceType),
			Quantity:     line.Quantity,
		}
	}

	return &createBooking.Request{
		UserID:          userID,
		CafeRef:         r.CafeRef,
		Date:            bookingDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Lines:           lines,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	out := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CafeID:          b.CafeID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Lines:           make([]BookingLineResponse, len(b.Lines)),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}

	for i, line := range b.Lines {
		out.Lines[i] = BookingLineResponse{
			ResourceType: string(line.ResourceType),
			Quantity:     line.Quantity,
		}
	}

	return out
}
