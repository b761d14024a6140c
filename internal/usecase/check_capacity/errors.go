package check_capacity

// Code машинный код отказа валидатора вместимости.
// Валидатор не бросает ошибок: любой исход - структурированный результат,
// который обработчики переводят в HTTP-ответ без дополнительной трансляции.
type Code string

const (
	// CodeInvalidRequest некорректные входные данные (дата, время, длительность)
	CodeInvalidRequest Code = "invalid_request"

	// CodeEmptyCart пустая корзина или все количества <= 0; отклоняется до I/O
	CodeEmptyCart Code = "empty_cart"

	// CodeUnknownResource тип ресурса вне закрытого перечня
	CodeUnknownResource Code = "unknown_resource"

	// CodeCafeNotFound кафе не найдено по ссылке
	CodeCafeNotFound Code = "cafe_not_found"

	// CodeCapacityExceeded запрошенное количество превышает свободный остаток
	CodeCapacityExceeded Code = "capacity_exceeded"

	// CodeCheckFailed проверка не завершилась (ошибка хранилища).
	// Fail-closed: бронирование никогда не принимается без проверки.
	CodeCheckFailed Code = "check_failed"
)
