package service

import (
	"context"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/entity"
)

// Pagination описывает страницу выдачи списочных запросов
type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	HasMore  bool  `json:"has_more"`
}

func newPagination(total int64, page, pageSize int) *Pagination {
	return &Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(page*pageSize) < total,
	}
}

// pageOffset нормализует номер страницы и возвращает смещение
func pageOffset(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * pageSize
}

type DestinationService interface {
	// Основные операции
	CreateDestination(ctx context.Context, req *CreateDestinationRequest) (*entity.Destination, error)
	GetDestination(ctx context.Context, id int64) (*entity.DestinationWithPackages, error)
	ListDestinations(ctx context.Context, filter *repository.DestinationFilter, page int) ([]*entity.Destination, *Pagination, error)
	UpdateDestination(ctx context.Context, id int64, req *UpdateDestinationRequest) (*entity.Destination, error)
	DeleteDestination(ctx context.Context, id int64) error

	// Справочники
	ListCountries(ctx context.Context) ([]string, error)
}

type PackageService interface {
	// Основные операции
	CreatePackage(ctx context.Context, req *CreatePackageRequest) (*entity.TravelPackage, error)
	GetPackage(ctx context.Context, id int64) (*entity.PackageDetails, error)
	ListPackages(ctx context.Context, filter *repository.PackageFilter, page int) ([]*entity.PackageWithDestination, *Pagination, error)
	UpdatePackage(ctx context.Context, id int64, req *UpdatePackageRequest) (*entity.TravelPackage, error)
	DeletePackage(ctx context.Context, id int64) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.CustomerWithBookings, error)
	ListCustomers(ctx context.Context, filter *repository.CustomerFilter, page int) ([]*entity.Customer, *Pagination, error)
	UpdateCustomer(ctx context.Context, id int64, req *UpdateCustomerRequest) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error)
	GetBooking(ctx context.Context, id int64) (*entity.BookingWithDetails, error)
	ListBookings(ctx context.Context, filter *repository.BookingFilter, page int) ([]*entity.BookingWithDetails, *Pagination, error)
	UpdateBooking(ctx context.Context, id int64, req *UpdateBookingRequest) (*entity.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*entity.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type HomeService interface {
	GetSummary(ctx context.Context) (*entity.HomeSummary, error)
}

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ParseToken(token string) (string, error)
}

// SeedService наполняет пустую базу демонстрационными данными
type SeedService interface {
	Seed(ctx context.Context) (*SeedReport, error)
}
