package create_booking

import (
	"errors"
	"net/http"

	"github.com/GCN-Platform/GCN-BookingService/internal/api/handlers"
	"github.com/GCN-Platform/GCN-BookingService/internal/api/middleware"
	createBooking "github.com/GCN-Platform/GCN-BookingService/internal/usecase/create_booking"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid start time format, expected HH:MM or H:MM am/pm"
	msgMissingUserID      = "missing user ID"
	msgCafeNotFound       = "cafe not found"
	msgInvalidBookingDate = "invalid booking date"
	msgTooLateToBook      = "too late to book this slot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrCapacityExceeded):
			// Сообщение отказа отдаём клиенту как есть: в нём тип ресурса
			// и остаток мест
			var capErr *createBooking.CapacityError
			msg := "not enough capacity for the requested time"
			if errors.As(err, &capErr) {
				msg = capErr.Rejection.Message
			}
			h.logger.Warn("POST /bookings - Capacity exceeded: user_id=%d, cafe=%s: %s", userID, req.CafeRef, msg)
			handlers.RespondError(w, http.StatusConflict, msg)

		case errors.Is(err, createBooking.ErrCafeNotFound):
			h.logger.Warn("POST /bookings - Cafe not found: cafe=%s", req.CafeRef)
			handlers.RespondNotFound(w, msgCafeNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, cafe=%s", userID, req.CafeRef)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, cafe=%s", userID, req.CafeRef)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, cafe=%s, error=%v", userID, req.CafeRef, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, cafe=%s, error=%v",
				userID, req.CafeRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, cafe=%s",
		response.ID, userID, req.CafeRef)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
