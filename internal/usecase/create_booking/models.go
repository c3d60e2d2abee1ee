package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID       int64   // ID услуги
	StaffID         *int64  // ID мастера; nil - сервер назначит первого свободного
	StartTs         int64   // начало слота, миллисекунды Unix-эпохи (UTC)
	CustomerName    string  // имя клиента
	CustomerContact *string // контакт клиента (опционально)
	Notes           *string // заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64  // ID созданного бронирования
	ServiceID int64  // ID услуги
	StaffID   int64  // назначенный мастер (после auto-assignment)
	StartTs   int64  // начало слота, мс
	EndTs     int64  // конец слота: StartTs + длительность услуги
	Status    string // статус бронирования

	CustomerName    string
	CustomerContact *string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
