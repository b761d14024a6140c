package check_capacity

import (
	"fmt"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

const (
	msgEmptyCart   = "booking request contains no items"
	msgCheckFailed = "could not check availability, please try again"
)

// validateRequest проверяет форму запроса до любого обращения к хранилищу
func validateRequest(req *Request) *Rejection {
	if req.CafeRef == "" {
		return &Rejection{Code: CodeInvalidRequest, Message: "cafe reference is required"}
	}
	if req.Date.IsZero() {
		return &Rejection{Code: CodeInvalidRequest, Message: "booking date is required"}
	}
	if err := req.StartTime.Validate(); err != nil {
		return &Rejection{Code: CodeInvalidRequest, Message: "invalid start time"}
	}
	if req.DurationMinutes <= 0 {
		return &Rejection{Code: CodeInvalidRequest, Message: "duration must be positive"}
	}
	return nil
}

// AggregateCart сводит корзину в количество на тип ресурса.
// Дубли строк по одному типу складываются; строки с количеством <= 0
// и типы вне закрытого перечня отклоняются; пустая итоговая корзина тоже.
func AggregateCart(lines []domain.BookingLine) (map[domain.ResourceType]int, *Rejection) {
	requested := make(map[domain.ResourceType]int)

	for _, line := range lines {
		if !line.ResourceType.Valid() {
			return nil, &Rejection{
				Code:         CodeUnknownResource,
				ResourceType: line.ResourceType,
				Message:      fmt.Sprintf("unknown resource type %q", string(line.ResourceType)),
			}
		}
		if line.Quantity <= 0 {
			return nil, &Rejection{
				Code:         CodeEmptyCart,
				ResourceType: line.ResourceType,
				Message:      msgEmptyCart,
			}
		}
		requested[line.ResourceType] += line.Quantity
	}

	if len(requested) == 0 {
		return nil, &Rejection{Code: CodeEmptyCart, Message: msgEmptyCart}
	}

	return requested, nil
}

// EvaluateCart проверяет, помещается ли запрошенная корзина в свободный
// остаток кафе на запрошенное окно. Занятость считается единственной
// общей функцией domain.SumOverlappingQuantities, поэтому цифры валидатора
// и агрегатора доступности совпадают по построению.
//
// nil означает, что корзина помещается.
func EvaluateCart(
	cafe *domain.Cafe,
	bookings []*domain.Booking,
	start types.TimeString,
	durationMinutes int,
	requested map[domain.ResourceType]int,
) *Rejection {
	alreadyBooked, err := domain.SumOverlappingQuantities(bookings, start, durationMinutes)
	if err != nil {
		// Не смогли посчитать занятость - отказ, а не молчаливый пропуск
		return &Rejection{Code: CodeCheckFailed, Message: msgCheckFailed}
	}

	// Детерминированный порядок проверки: первый не поместившийся тип
	// по фиксированному перечню, независимо от порядка строк корзины
	for _, rt := range domain.AllResourceTypes {
		qty, ok := requested[rt]
		if !ok {
			continue
		}

		remaining := cafe.CapacityFor(rt) - alreadyBooked[rt]
		if qty > remaining {
			return capacityRejection(rt, remaining)
		}
	}

	return nil
}

func capacityRejection(rt domain.ResourceType, remaining int) *Rejection {
	var msg string
	if remaining <= 0 {
		msg = fmt.Sprintf("%s: none available for the requested time", rt.DisplayName())
	} else {
		msg = fmt.Sprintf("%s: only %d available for the requested time", rt.DisplayName(), remaining)
	}
	return &Rejection{
		Code:         CodeCapacityExceeded,
		ResourceType: rt,
		Remaining:    remaining,
		Message:      msg,
	}
}
