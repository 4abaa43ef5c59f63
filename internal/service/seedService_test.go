package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type seedFixture struct {
	svc          SeedService
	destinations *fakeDestinationRepo
	packages     *fakePackageRepo
	customers    *fakeCustomerRepo
	bookings     *fakeBookingRepo
	admins       *fakeAdminRepo
}

func newSeedFixture() *seedFixture {
	destinations := newFakeDestinationRepo()
	packages := newFakePackageRepo()
	customers := newFakeCustomerRepo()
	bookings := newFakeBookingRepo(packages)
	admins := newFakeAdminRepo()

	return &seedFixture{
		svc:          NewSeedService(destinations, packages, customers, bookings, admins),
		destinations: destinations,
		packages:     packages,
		customers:    customers,
		bookings:     bookings,
		admins:       admins,
	}
}

// TestSeedCreatesSampleData тестирует первичное наполнение базы
func TestSeedCreatesSampleData(t *testing.T) {
	f := newSeedFixture()

	report, err := f.svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, report.DestinationsCreated)
	assert.Equal(t, 5, report.PackagesCreated)
	assert.Equal(t, 5, report.CustomersCreated)
	assert.Equal(t, 5, report.BookingsCreated)
	assert.True(t, report.AdminCreated)

	// Подтверждённые и ожидающие бронирования удерживают места
	tokyo, err := f.packages.GetByDestinationAndName(context.Background(), 1, "Tokyo Adventure Week")
	require.NoError(t, err)
	assert.Equal(t, 13, tokyo.AvailableSpots, "2 seats held by the confirmed booking")

	admin, err := f.admins.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

// TestSeedIsIdempotent тестирует повторный запуск наполнения
func TestSeedIsIdempotent(t *testing.T) {
	f := newSeedFixture()

	_, err := f.svc.Seed(context.Background())
	require.NoError(t, err)

	report, err := f.svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.DestinationsCreated)
	assert.Zero(t, report.PackagesCreated)
	assert.Zero(t, report.CustomersCreated)
	assert.Zero(t, report.BookingsCreated)
	assert.False(t, report.AdminCreated)

	total, err := f.destinations.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "running seed twice must not duplicate rows")

	bookingsTotal, err := f.bookings.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), bookingsTotal)

	// Повторный запуск не удерживает места ещё раз
	tokyo, err := f.packages.GetByDestinationAndName(context.Background(), 1, "Tokyo Adventure Week")
	require.NoError(t, err)
	assert.Equal(t, 13, tokyo.AvailableSpots)
}
