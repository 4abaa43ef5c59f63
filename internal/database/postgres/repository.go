package repository

import (
	"context"

	"github.com/ds124wfegd/travelbooker/internal/entity"
)

// DestinationFilter описывает параметры поиска по направлениям
type DestinationFilter struct {
	Search  string // подстрока в name/country/description
	Country string // подстрока в country
}

// PackageFilter описывает параметры поиска по турам
type PackageFilter struct {
	Search        string // подстрока в name тура, name направления, itinerary
	DestinationID int64
	MinPrice      *float64
	MaxPrice      *float64
	AvailableOnly bool
}

// CustomerFilter описывает параметры поиска по клиентам
type CustomerFilter struct {
	Search string // подстрока в first_name/last_name/email/phone
}

// BookingFilter описывает параметры поиска по бронированиям
type BookingFilter struct {
	Search     string // подстрока в имени клиента или названии тура
	Status     entity.BookingStatus
	CustomerID int64
}

type DestinationRepository interface {
	Create(ctx context.Context, destination *entity.Destination) error
	GetByID(ctx context.Context, id int64) (*entity.Destination, error)
	GetByNameAndCountry(ctx context.Context, name, country string) (*entity.Destination, error)
	List(ctx context.Context, filter *DestinationFilter, limit, offset int) ([]*entity.Destination, int64, error)
	ListCountries(ctx context.Context) ([]string, error)
	Update(ctx context.Context, destination *entity.Destination) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.TravelPackage) error
	GetByID(ctx context.Context, id int64) (*entity.PackageWithDestination, error)
	GetByDestinationAndName(ctx context.Context, destinationID int64, name string) (*entity.TravelPackage, error)
	List(ctx context.Context, filter *PackageFilter, limit, offset int) ([]*entity.PackageWithDestination, int64, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]*entity.TravelPackage, error)
	GetUpcomingAvailable(ctx context.Context, limit int) ([]*entity.PackageWithDestination, error)
	Update(ctx context.Context, pkg *entity.TravelPackage) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	List(ctx context.Context, filter *CustomerFilter, limit, offset int) ([]*entity.Customer, int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	// Create выполняет вставку и удержание мест тура в одной транзакции
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id int64) (*entity.Booking, error)
	GetDetails(ctx context.Context, id int64) (*entity.BookingWithDetails, error)
	GetByCustomerAndPackage(ctx context.Context, customerID, packageID int64) (*entity.Booking, error)
	List(ctx context.Context, filter *BookingFilter, limit, offset int) ([]*entity.BookingWithDetails, int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Booking, error)
	ListByPackage(ctx context.Context, packageID int64) ([]*entity.Booking, error)
	// Update корректирует удержанные места при смене статуса или числа человек
	Update(ctx context.Context, booking *entity.Booking) error
	// Delete возвращает места тура, если бронирование их удерживало
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
