package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	bookingRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/booking"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
	"github.com/GCN-Platform/GCN-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	cafeRepo    CafeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	cafeRepo CafeRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cafeRepo:    cafeRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является владельцем кафе
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCafeBookings получает бронирования кафе с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только владельцу кафе
//
// Примеры использования:
// - Все активные бронирования: GetCafeBookings(ctx, &GetCafeBookingsRequest{CafeRef: "42", UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetCafeBookings(ctx context.Context, req *models.GetCafeBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetCafeBookings: fetching bookings for cafe=%s, user=%d", req.CafeRef, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Резолвим ссылку на кафе (ID или slug) в запись каталога
	cafe, err := s.cafeRepo.Resolve(ctx, req.CafeRef)
	if err != nil {
		if errors.Is(err, cafeRepo.ErrCafeNotFound) {
			s.logger.Warn("GetCafeBookings: cafe %q not found", req.CafeRef)
			return nil, ErrCafeNotFound
		}
		s.logger.Error("GetCafeBookings: failed to resolve cafe %q: %v", req.CafeRef, err)
		return nil, fmt.Errorf("%w: GetCafeBookings - failed to resolve cafe: %v", ErrInternal, err)
	}

	// Проверяем права доступа владельца
	if err := s.checkOwnerAccess(cafe, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter(cafe.ID)
	if err != nil {
		s.logger.Warn("GetCafeBookings: invalid filter for cafe=%d: %v", cafe.ID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByCafeWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCafeBookings: repository error for cafe=%d: %v", cafe.ID, err)
		return nil, fmt.Errorf("%w: GetCafeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCafeBookings: successfully fetched %d bookings for cafe=%d", len(bookings), cafe.ID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование (cancelled_by_user)
// Владелец кафе может отменить любое бронирование своего кафе (cancelled_by_cafe)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancelReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	// Проверяем, является ли пользователь владельцем бронирования
	if booking.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Проверяем, является ли пользователь владельцем кафе
		if err := s.checkCafeOwnerAccess(ctx, booking.CafeID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByCafe
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только владельцу кафе
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только владелец кафе)
	if err := s.checkCafeOwnerAccess(ctx, booking.CafeID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он владелец кафе
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь владельцем кафе
	if err := s.checkCafeOwnerAccess(ctx, booking.CafeID, userID); err != nil {
		// Ошибка уже залогирована в checkCafeOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkCafeOwnerAccess проверяет, что пользователь является владельцем кафе
func (s *Service) checkCafeOwnerAccess(ctx context.Context, cafeID int64, userID int64) error {
	cafe, err := s.cafeRepo.GetByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, cafeRepo.ErrCafeNotFound) {
			s.logger.Warn("checkCafeOwnerAccess: cafe id=%d not found", cafeID)
			return ErrCafeNotFound
		}
		s.logger.Error("checkCafeOwnerAccess: failed to get cafe id=%d: %v", cafeID, err)
		return fmt.Errorf("%w: checkCafeOwnerAccess - failed to get cafe: %v", ErrInternal, err)
	}

	return s.checkOwnerAccess(cafe, userID)
}

// checkOwnerAccess проверяет владельца по уже загруженной записи кафе
func (s *Service) checkOwnerAccess(cafe *domain.Cafe, userID int64) error {
	if cafe.OwnerUserID == userID {
		s.logger.Info("checkOwnerAccess: user=%d is owner of cafe=%d", userID, cafe.ID)
		return nil
	}

	s.logger.Warn("checkOwnerAccess: user=%d is not the owner of cafe=%d", userID, cafe.ID)
	return ErrAccessDenied
}
