package get_availability

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// Request модель запроса снимка доступности
type Request struct {
	CafeRef         string           // Ссылка на кафе: числовой ID или slug
	Date            time.Time        // Дата (без времени)
	StartTime       types.TimeString // Предлагаемое время начала
	DurationMinutes int              // Предлагаемая длительность
}

// Response снимок доступности по типам ресурсов.
// Пустая карта Resources означает "неизвестно/недоступно", а не
// "всё свободно" - потребители обязаны различать эти случаи.
type Response struct {
	CafeID          int64
	CafeSlug        string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Resources       map[domain.ResourceType]Snapshot
}

// Snapshot производные цифры по одному типу ресурса на запрошенное окно
type Snapshot struct {
	Total  int
	Booked int
	// Available = Total - Booked без обрезания: отрицательное значение
	// видно оператору как сигнал овербукинга
	Available int
	// NextAvailableAt минимальное время окончания среди пересекающихся
	// бронирований, удерживающих этот ресурс; не задано, если ресурс
	// никем не занят на это окно
	NextAvailableAt *types.TimeString
}
