package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
)

// UseCase агрегатор доступности - read-only снимок занятости кафе
// на предложенное окно. Безопасен для многократных вызовов: UI опрашивает
// его каждые ~30 секунд и при каждой смене даты/времени/кафе.
type UseCase struct {
	cafeRepo    CafeRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр агрегатора доступности
func NewUseCase(cafeRepo CafeRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		cafeRepo:    cafeRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute строит снимок доступности по типам ресурсов.
// Ошибки чтения бронирований не пробрасываются: логируются, а в ответе
// остаётся пустая карта - потребитель трактует её как "неизвестно",
// никогда как "всё свободно".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: cafe=%s, date=%s, time=%s, duration=%d",
		req.CafeRef, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	cafe, err := uc.cafeRepo.Resolve(ctx, req.CafeRef)
	if err != nil {
		if errors.Is(err, cafeRepo.ErrCafeNotFound) {
			uc.logger.Warn("GetAvailability: cafe %q not found", req.CafeRef)
			return nil, ErrCafeNotFound
		}
		uc.logger.Error("GetAvailability: failed to resolve cafe %q: %v", req.CafeRef, err)
		return uc.emptyResponse(req, nil), nil
	}

	resp := uc.emptyResponse(req, cafe)

	bookings, err := uc.bookingRepo.GetByCafeAndDate(ctx, cafe.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for cafe=%d date=%s: %v",
			cafe.ID, req.Date.Format(domain.DateFormat), err)
		return resp, nil
	}

	snapshots, err := buildSnapshots(cafe, bookings, req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build snapshots for cafe=%d: %v", cafe.ID, err)
		return resp, nil
	}

	resp.Resources = snapshots

	uc.logger.Info("GetAvailability: cafe=%d, date=%s, %d resource types reported",
		cafe.ID, req.Date.Format(domain.DateFormat), len(snapshots))
	return resp, nil
}

func (uc *UseCase) emptyResponse(req *Request, cafe *domain.Cafe) *Response {
	resp := &Response{
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Resources:       make(map[domain.ResourceType]Snapshot),
	}
	if cafe != nil {
		resp.CafeID = cafe.ID
		resp.CafeSlug = cafe.Slug
	}
	return resp
}

func validateRequest(req *Request) error {
	if req.CafeRef == "" {
		return fmt.Errorf("%w: cafe reference is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
