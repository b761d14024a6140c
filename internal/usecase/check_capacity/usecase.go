package check_capacity

import (
	"context"
	"errors"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
)

// UseCase валидатор вместимости - авторитетная проверка на пути записи.
// Отвечает на вопрос: поместится ли запрошенная корзина (тип ресурса ->
// количество) в физическую вместимость кафе на запрошенное окно с учётом
// пересекающихся активных бронирований.
//
// Сам по себе валидатор - stateless-предикат над текущим содержимым
// хранилища. Гарантию от гонки check-then-act даёт usecase создания
// бронирования, который выполняет ту же проверку внутри сериализуемой
// транзакции (см. create_booking).
type UseCase struct {
	cafeRepo    CafeRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр валидатора вместимости
func NewUseCase(cafeRepo CafeRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		cafeRepo:    cafeRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку вместимости.
// Любой исход возвращается как структурированный Result; ошибки хранилища
// превращаются в отказ check_failed (fail-closed) - валидатор никогда
// не принимает бронирование, которое не смог проверить.
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Result {
	uc.logger.Info("CheckCapacity: cafe=%s, date=%s, time=%s, duration=%d, lines=%d",
		req.CafeRef, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, len(req.Lines))

	// 1. Валидация формы запроса
	if rej := validateRequest(req); rej != nil {
		uc.logger.Warn("CheckCapacity: invalid request: %s", rej.Message)
		return Rejected(rej)
	}

	// 2. Сводим корзину до обращения к хранилищу
	requested, rej := AggregateCart(req.Lines)
	if rej != nil {
		uc.logger.Warn("CheckCapacity: cart rejected: %s", rej.Message)
		return Rejected(rej)
	}

	// 3. Разрешаем ссылку на кафе и читаем вместимость
	cafe, err := uc.cafeRepo.Resolve(ctx, req.CafeRef)
	if err != nil {
		if errors.Is(err, cafeRepo.ErrCafeNotFound) {
			uc.logger.Warn("CheckCapacity: cafe %q not found", req.CafeRef)
			return Rejected(&Rejection{Code: CodeCafeNotFound, Message: "cafe not found"})
		}
		uc.logger.Error("CheckCapacity: failed to resolve cafe %q: %v", req.CafeRef, err)
		return Rejected(&Rejection{Code: CodeCheckFailed, Message: msgCheckFailed})
	}

	// 4. Читаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByCafeAndDate(ctx, cafe.ID, req.Date)
	if err != nil {
		uc.logger.Error("CheckCapacity: failed to get bookings for cafe=%d date=%s: %v",
			cafe.ID, req.Date.Format(domain.DateFormat), err)
		return Rejected(&Rejection{Code: CodeCheckFailed, Message: msgCheckFailed})
	}

	// 5. Проверяем корзину против свободного остатка
	if rej := EvaluateCart(cafe, bookings, req.StartTime, req.DurationMinutes, requested); rej != nil {
		uc.logger.Warn("CheckCapacity: rejected cafe=%d: %s", cafe.ID, rej.Message)
		return Rejected(rej)
	}

	uc.logger.Info("CheckCapacity: accepted cafe=%d, date=%s, time=%s",
		cafe.ID, req.Date.Format(domain.DateFormat), req.StartTime)
	return Accepted()
}
