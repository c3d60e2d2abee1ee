package get_available_slots

import "github.com/glowline/salon-booking-service/internal/domain"

// Request модель запроса на получение доступных слотов
type Request struct {
	DateTs    int64  // любой момент выбранного дня, миллисекунды Unix-эпохи (день определяется по UTC)
	ServiceID *int64 // ID услуги (опционально, без неё используется дефолтная длительность)
	StaffID   *int64 // фильтр по мастеру (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots []domain.Slot // отсортированы по startTs по возрастанию
}
