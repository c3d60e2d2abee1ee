package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bookingsService "github.com/glowline/salon-booking-service/internal/service/bookings"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doCancel(h *Handler, bookingID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_Cancelled(t *testing.T) {
	service := new(MockBookingService)
	service.On("Cancel", mock.Anything, int64(10)).Return(nil)

	w := doCancel(NewHandler(service, nopLogger{}), "10")

	assert.Equal(t, http.StatusNoContent, w.Code)
	service.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"не найдено - 404", bookingsService.ErrBookingNotFound, http.StatusNotFound},
		{"уже отменено - 409", bookingsService.ErrAlreadyCancelled, http.StatusConflict},
		{"внутренняя ошибка - 500", bookingsService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockBookingService)
			service.On("Cancel", mock.Anything, int64(10)).Return(tt.err)

			w := doCancel(NewHandler(service, nopLogger{}), "10")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	service := new(MockBookingService)

	w := doCancel(NewHandler(service, nopLogger{}), "abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}
