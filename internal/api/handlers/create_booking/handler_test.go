package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/glowline/salon-booking-service/internal/usecase/create_booking"
)

type MockCreateBookingUseCase struct {
	mock.Mock
}

func (m *MockCreateBookingUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"serviceId":    1,
		"startTs":      1_750_000_000_000,
		"customerName": "Иван Петров",
	}
}

func TestHandle_Created(t *testing.T) {
	useCase := new(MockCreateBookingUseCase)
	useCase.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
		ID:           42,
		ServiceID:    1,
		StaffID:      2,
		StartTs:      1_750_000_000_000,
		EndTs:        1_750_001_800_000,
		Status:       "confirmed",
		CustomerName: "Иван Петров",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil)

	w := doRequest(t, NewHandler(useCase, nopLogger{}), validBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(2), resp.StaffID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"занятый слот - 409", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"нет свободных мастеров - 409", createBooking.ErrNoAvailableStaff, http.StatusConflict},
		{"услуга не найдена - 404", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"мастер не найден - 404", createBooking.ErrStaffNotFound, http.StatusNotFound},
		{"некорректный ввод - 400", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"внутренняя ошибка - 500", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockCreateBookingUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doRequest(t, NewHandler(useCase, nopLogger{}), validBody())
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	useCase := new(MockCreateBookingUseCase)
	h := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	h.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
