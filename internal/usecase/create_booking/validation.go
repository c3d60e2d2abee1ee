package create_booking

import (
	"fmt"
	"strings"

	"github.com/glowline/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.StartTs <= 0 {
		return fmt.Errorf("%w: startTs must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateService проверяет, что длительность услуги даёт корректный
// непустой интервал бронирования
func validateService(svc *domain.Service) error {
	if svc.DurationMin <= 0 {
		return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}
	return nil
}
