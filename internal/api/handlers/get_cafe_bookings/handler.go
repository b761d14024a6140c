package get_cafe_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/GCN-Platform/GCN-BookingService/internal/api/handlers"
	"github.com/GCN-Platform/GCN-BookingService/internal/api/middleware"
	"github.com/GCN-Platform/GCN-BookingService/internal/service/bookings"
)

const (
	msgMissingUserID = "missing user ID"
	msgInvalidParams = "invalid query parameters"
	msgCafeNotFound  = "cafe not found"
	msgForbidden     = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeRef}/bookings
// Query params: status, date, from, to, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем cafeRef из URL (числовой ID или slug)
	vars := mux.Vars(r)
	cafeRef := vars["cafeRef"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /cafes/{ref}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	statusStr := r.URL.Query().Get("status")
	dateStr := r.URL.Query().Get("date")
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	includeInactiveStr := r.URL.Query().Get("includeInactive")

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(cafeRef, userID, statusStr, dateStr, fromStr, toStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /cafes/{ref}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования кафе (сервис сам проверит права владельца)
	result, err := h.service.GetCafeBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCafeNotFound):
			h.logger.Warn("GET /cafes/{ref}/bookings - Cafe not found: cafe=%s", cafeRef)
			handlers.RespondNotFound(w, msgCafeNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /cafes/{ref}/bookings - Access denied: cafe=%s, user_id=%d",
				cafeRef, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /cafes/{ref}/bookings - Invalid filter: cafe=%s, error=%v", cafeRef, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /cafes/{ref}/bookings - Failed to get bookings: cafe=%s, error=%v",
				cafeRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cafes/{ref}/bookings - Bookings retrieved successfully: cafe=%s, count=%d",
		cafeRef, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
