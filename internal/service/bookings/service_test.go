package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glowline/salon-booking-service/internal/domain"
	bookingRepo "github.com/glowline/salon-booking-service/internal/infra/storage/booking"
	"github.com/glowline/salon-booking-service/internal/service/bookings/models"
	"github.com/glowline/salon-booking-service/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		ServiceID:    1,
		StaffID:      2,
		StartTs:      1_750_000_000_000,
		EndTs:        1_750_001_800_000,
		CustomerName: "Иван Петров",
		Status:       domain.StatusConfirmed,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("успешное получение", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(10), nil)

		svc := NewService(repo, nopLogger{})
		resp, err := svc.GetByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("не найдено", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(10)).Return(nil, bookingRepo.ErrBookingNotFound)

		svc := NewService(repo, nopLogger{})
		_, err := svc.GetByID(context.Background(), 10)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("ошибка репозитория", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(10)).Return(nil, errors.New("connection refused"))

		svc := NewService(repo, nopLogger{})
		_, err := svc.GetByID(context.Background(), 10)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_List(t *testing.T) {
	repo := new(MockBookingRepository)
	staffID := ptr.Ptr(int64(2))
	repo.On("ListWithFilter", mock.Anything, domain.BookingsFilter{StaffID: staffID}).
		Return([]*domain.Booking{confirmedBooking(1), confirmedBooking(2)}, nil)

	svc := NewService(repo, nopLogger{})
	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{StaffID: staffID})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	repo.AssertExpectations(t)
}

func TestService_Cancel(t *testing.T) {
	t.Run("успешная отмена", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(10), nil)
		repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusCancelled).Return(nil)

		svc := NewService(repo, nopLogger{})
		err := svc.Cancel(context.Background(), 10)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("повторная отмена - ошибка, не no-op", func(t *testing.T) {
		cancelled := confirmedBooking(10)
		cancelled.Status = domain.StatusCancelled

		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(10)).Return(cancelled, nil)

		svc := NewService(repo, nopLogger{})
		err := svc.Cancel(context.Background(), 10)

		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		// До UpdateStatus дело не доходит
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("не найдено", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(10)).Return(nil, bookingRepo.ErrBookingNotFound)

		svc := NewService(repo, nopLogger{})
		err := svc.Cancel(context.Background(), 10)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
