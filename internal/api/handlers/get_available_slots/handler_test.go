package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glowline/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/glowline/salon-booking-service/internal/usecase/get_available_slots"
)

type MockGetAvailableSlotsUseCase struct {
	mock.Mock
}

func (m *MockGetAvailableSlotsUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil)
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_ReturnsSlots(t *testing.T) {
	useCase := new(MockGetAvailableSlotsUseCase)
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.DateTs == 1_750_000_000_000 && req.ServiceID != nil && *req.ServiceID == 5 && req.StaffID == nil
	})).Return(&getAvailableSlots.Response{
		Slots: []domain.Slot{
			{StartTs: 1_750_000_000_000, EndTs: 1_750_001_800_000, StaffID: 1},
		},
	}, nil)

	w := doRequest(NewHandler(useCase, nopLogger{}), "?dateTs=1750000000000&serviceId=5")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(1), resp.Slots[0].StaffID)
	useCase.AssertExpectations(t)
}

func TestHandle_MissingDateTs(t *testing.T) {
	useCase := new(MockGetAvailableSlotsUseCase)

	w := doRequest(NewHandler(useCase, nopLogger{}), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InvalidParams(t *testing.T) {
	useCase := new(MockGetAvailableSlotsUseCase)
	h := NewHandler(useCase, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "?dateTs=abc").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "?dateTs=1750000000000&serviceId=abc").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "?dateTs=1750000000000&staffId=abc").Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	useCase := new(MockGetAvailableSlotsUseCase)
	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrServiceNotFound)

	w := doRequest(NewHandler(useCase, nopLogger{}), "?dateTs=1750000000000&serviceId=99")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
