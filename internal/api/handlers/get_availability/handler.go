package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/GCN-Platform/GCN-BookingService/internal/api/handlers"
	getAvailability "github.com/GCN-Platform/GCN-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidParams   = "invalid query parameters, expected date=YYYY-MM-DD, time=HH:MM, duration in minutes"
	msgInvalidDuration = "invalid duration, expected a positive number of minutes"
	msgCafeNotFound    = "cafe not found"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeRef}/availability
// Query params: date (обязательный), time (обязательный), duration (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeRef := vars["cafeRef"]

	dateStr := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")
	durationStr := r.URL.Query().Get("duration")

	durationMinutes := 0
	if durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /cafes/{ref}/availability - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		durationMinutes = parsed
	}

	useCaseReq, err := ToUseCaseRequest(cafeRef, dateStr, timeStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /cafes/{ref}/availability - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCafeNotFound):
			h.logger.Warn("GET /cafes/{ref}/availability - Cafe not found: cafe=%s", cafeRef)
			handlers.RespondNotFound(w, msgCafeNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cafes/{ref}/availability - Invalid input: cafe=%s, error=%v", cafeRef, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /cafes/{ref}/availability - Failed: cafe=%s, error=%v", cafeRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cafes/{ref}/availability - Snapshot served: cafe=%s, resources=%d",
		cafeRef, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
