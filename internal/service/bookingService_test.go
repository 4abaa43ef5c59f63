package service

import (
	"context"
	"testing"

	"github.com/ds124wfegd/travelbooker/internal/database/redis"
	"github.com/ds124wfegd/travelbooker/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	svc       BookingService
	packages  *fakePackageRepo
	customers *fakeCustomerRepo
	pkg       *entity.TravelPackage
	customer  *entity.Customer
}

func newBookingFixture(t *testing.T, spots int, price float64) *bookingFixture {
	t.Helper()

	packages := newFakePackageRepo()
	customers := newFakeCustomerRepo()
	bookings := newFakeBookingRepo(packages)

	pkg := &entity.TravelPackage{
		DestinationID:  1,
		Name:           "Tokyo Adventure Week",
		Price:          price,
		StartDate:      entity.NewDateOnly(2026, 9, 1),
		EndDate:        entity.NewDateOnly(2026, 9, 8),
		DurationDays:   7,
		Itinerary:      "Day 1: Arrival",
		AvailableSpots: spots,
	}
	require.NoError(t, packages.Create(context.Background(), pkg))

	customer := &entity.Customer{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@email.com",
		Phone:     "555-0101",
		Address:   "123 Main St",
	}
	require.NoError(t, customers.Create(context.Background(), customer))

	return &bookingFixture{
		svc:       NewBookingService(bookings, packages, customers, redis.NoopCache{}, 10),
		packages:  packages,
		customers: customers,
		pkg:       pkg,
		customer:  customer,
	}
}

func (f *bookingFixture) spotsLeft() int {
	return f.packages.packages[f.pkg.ID].AvailableSpots
}

// TestCreateBookingSpotLimit тестирует отказ при нехватке мест
func TestCreateBookingSpotLimit(t *testing.T) {
	tests := []struct {
		name    string
		spots   int
		people  int
		wantErr error
	}{
		{name: "exact fit", spots: 5, people: 5},
		{name: "one spot left over", spots: 5, people: 4},
		{name: "one too many", spots: 5, people: 6, wantErr: entity.ErrNotEnoughSpots},
		{name: "sold out package", spots: 0, people: 1, wantErr: entity.ErrNotEnoughSpots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t, tt.spots, 1999.00)

			booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
				CustomerID:      f.customer.ID,
				TravelPackageID: f.pkg.ID,
				NumberOfPeople:  tt.people,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.spots, f.spotsLeft(), "failed booking must not hold spots")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.BookingStatusPending, booking.Status)
			assert.Equal(t, tt.spots-tt.people, f.spotsLeft())
		})
	}
}

// TestCreateBookingPriceDerivation тестирует вывод итоговой стоимости
func TestCreateBookingPriceDerivation(t *testing.T) {
	tests := []struct {
		name      string
		people    int
		total     float64
		wantTotal float64
	}{
		{name: "derived from package price", people: 2, total: 0, wantTotal: 4998.00},
		{name: "derived for one person", people: 1, total: 0, wantTotal: 2499.00},
		{name: "explicit total preserved", people: 2, total: 4500.00, wantTotal: 4500.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t, 10, 2499.00)

			booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
				CustomerID:      f.customer.ID,
				TravelPackageID: f.pkg.ID,
				NumberOfPeople:  tt.people,
				TotalPrice:      tt.total,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, booking.TotalPrice)
		})
	}
}

// TestCreateBookingUnknownReferences тестирует проверку ссылок
func TestCreateBookingUnknownReferences(t *testing.T) {
	f := newBookingFixture(t, 10, 1999.00)

	_, err := f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerID:      999,
		TravelPackageID: f.pkg.ID,
		NumberOfPeople:  1,
	})
	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)

	_, err = f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerID:      f.customer.ID,
		TravelPackageID: 999,
		NumberOfPeople:  1,
	})
	assert.ErrorIs(t, err, entity.ErrPackageNotFound)

	_, err = f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerID:      f.customer.ID,
		TravelPackageID: f.pkg.ID,
		Status:          "paused",
		NumberOfPeople:  1,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidBookingStatus)
}

// TestCancelBookingRestoresSpots тестирует возврат мест при отмене
func TestCancelBookingRestoresSpots(t *testing.T) {
	f := newBookingFixture(t, 10, 1999.00)

	booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerID:      f.customer.ID,
		TravelPackageID: f.pkg.ID,
		NumberOfPeople:  3,
	})
	require.NoError(t, err)
	require.Equal(t, 7, f.spotsLeft())

	cancelled, err := f.svc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 10, f.spotsLeft())

	// Повторная отмена ничего не меняет
	_, err = f.svc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, f.spotsLeft())
}

// TestUpdateBookingAdjustsSpots тестирует корректировку мест при изменении брони
func TestUpdateBookingAdjustsSpots(t *testing.T) {
	f := newBookingFixture(t, 10, 1000.00)

	booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerID:      f.customer.ID,
		TravelPackageID: f.pkg.ID,
		NumberOfPeople:  2,
	})
	require.NoError(t, err)
	require.Equal(t, 8, f.spotsLeft())

	// Рост числа человек удерживает больше мест
	updated, err := f.svc.UpdateBooking(context.Background(), booking.ID, &UpdateBookingRequest{
		Status:         entity.BookingStatusConfirmed,
		NumberOfPeople: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, f.spotsLeft())
	assert.Equal(t, 5000.00, updated.TotalPrice)

	// Рост сверх доступного отклоняется, состояние не меняется
	_, err = f.svc.UpdateBooking(context.Background(), booking.ID, &UpdateBookingRequest{
		Status:         entity.BookingStatusConfirmed,
		NumberOfPeople: 11,
	})
	require.ErrorIs(t, err, entity.ErrNotEnoughSpots)
	assert.Equal(t, 5, f.spotsLeft())

	// Отмена через update возвращает все места
	_, err = f.svc.UpdateBooking(context.Background(), booking.ID, &UpdateBookingRequest{
		Status:         entity.BookingStatusCancelled,
		NumberOfPeople: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, f.spotsLeft())
}

// TestDeleteBookingRestoresSpots тестирует возврат мест при удалении
func TestDeleteBookingRestoresSpots(t *testing.T) {
	f := newBookingFixture(t, 6, 1000.00)

	booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerID:      f.customer.ID,
		TravelPackageID: f.pkg.ID,
		NumberOfPeople:  4,
	})
	require.NoError(t, err)
	require.Equal(t, 2, f.spotsLeft())

	require.NoError(t, f.svc.DeleteBooking(context.Background(), booking.ID))
	assert.Equal(t, 6, f.spotsLeft())

	_, err = f.svc.GetBooking(context.Background(), booking.ID)
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}
