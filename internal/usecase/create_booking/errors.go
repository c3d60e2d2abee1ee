package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда указанный мастер не найден
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrSlotNotAvailable возвращается, когда слот указанного мастера занят
	// Клиент должен перезапросить доступные слоты и повторить с подтверждением -
	// движок сам попытку не повторяет
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrNoAvailableStaff возвращается, когда при auto-assignment все активные
	// мастера заняты. Двойное бронирование как fallback недопустимо
	ErrNoAvailableStaff = errors.New("create_booking: no available staff for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
