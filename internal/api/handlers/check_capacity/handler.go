package check_capacity

import (
	"net/http"

	"github.com/GCN-Platform/GCN-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid booking date or start time"
)

type Handler struct {
	useCase CheckCapacityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check
// Предварительная проверка корзины без записи: UI зовёт её перед
// подтверждением, окончательное слово остаётся за созданием бронирования.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Любой исход проверки - это 200 со структурированным результатом:
	// отказ по вместимости не ошибка HTTP, а ответ по существу
	result := h.useCase.Execute(r.Context(), useCaseReq)

	h.logger.Info("POST /bookings/check - cafe=%s, ok=%t", req.CafeRef, result.OK)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}
