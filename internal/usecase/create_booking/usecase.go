package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
	"github.com/GCN-Platform/GCN-BookingService/internal/usecase/check_capacity"
	"github.com/GCN-Platform/GCN-BookingService/pkg/ptr"
)

// UseCase создание бронирования - единственный путь записи, проходящий
// через валидатор вместимости. Проверка остатка и вставка выполняются
// в одной сериализуемой транзакции с блокировкой пересекающихся
// бронирований, поэтому два конкурентных запроса на последние места
// не могут пройти оба.
type UseCase struct {
	bookingRepo      BookingRepository
	cafeRepo         CafeRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	minNoticeMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр usecase создания бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	cafeRepo CafeRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	if minNoticeMinutes <= 0 {
		minNoticeMinutes = domain.DefaultMinBookingNoticeMinutes
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		cafeRepo:         cafeRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

// Execute создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, cafe=%s, date=%s, time=%s, duration=%d",
		req.UserID, req.CafeRef, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateTiming(req, uc.timeProvider.Now(), uc.minNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: timing check failed: %v", err)
		return nil, err
	}

	requested, rejection := check_capacity.AggregateCart(req.Lines)
	if rejection != nil {
		uc.logger.Warn("CreateBooking: cart rejected: %s", rejection.Message)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, rejection.Message)
	}

	cafe, err := uc.cafeRepo.Resolve(ctx, req.CafeRef)
	if err != nil {
		if errors.Is(err, cafeRepo.ErrCafeNotFound) {
			uc.logger.Warn("CreateBooking: cafe %q not found", req.CafeRef)
			return nil, ErrCafeNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve cafe %q: %v", req.CafeRef, err)
		return nil, fmt.Errorf("%w: failed to resolve cafe: %v", ErrInternal, err)
	}

	var created *domain.Booking

	// Проверка остатка и вставка - атомарно. GetByCafeAndDate внутри
	// транзакции блокирует строки активных бронирований (FOR UPDATE),
	// сериализуемый уровень с ретраями закрывает гонку между
	// конкурентными запросами на одно окно.
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByCafeAndDate(txCtx, cafe.ID, req.Date)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		if rej := check_capacity.EvaluateCart(cafe, bookings, req.StartTime, req.DurationMinutes, requested); rej != nil {
			return &CapacityError{Rejection: rej}
		}

		booking := &domain.Booking{
			UserID:          req.UserID,
			CafeID:          cafe.ID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			Lines:           orderedLines(requested),
		}
		if req.Notes != "" {
			booking.Notes = ptr.Ptr(req.Notes)
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})

	if txErr != nil {
		var capErr *CapacityError
		if errors.As(txErr, &capErr) {
			uc.logger.Warn("CreateBooking: capacity rejected for user=%d cafe=%d: %s",
				req.UserID, cafe.ID, capErr.Rejection.Message)
			return nil, capErr
		}
		uc.logger.Error("CreateBooking: transaction failed for user=%d cafe=%d: %v",
			req.UserID, cafe.ID, txErr)
		return nil, fmt.Errorf("%w: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateBooking: booking %d created for user=%d cafe=%d",
		created.ID, req.UserID, cafe.ID)
	return &Response{Booking: created}, nil
}

// orderedLines разворачивает агрегированную корзину обратно в строки
// в фиксированном порядке перечня типов - детерминированно для вставки
func orderedLines(requested map[domain.ResourceType]int) []domain.BookingLine {
	lines := make([]domain.BookingLine, 0, len(requested))
	for _, rt := range domain.AllResourceTypes {
		if qty, ok := requested[rt]; ok {
			lines = append(lines, domain.BookingLine{ResourceType: rt, Quantity: qty})
		}
	}
	return lines
}
