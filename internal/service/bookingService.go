package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/database/redis"
	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/sirupsen/logrus"
)

// CreateBookingRequest представляет данные для создания бронирования
type CreateBookingRequest struct {
	CustomerID      int64                `json:"customer_id" binding:"required"`
	TravelPackageID int64                `json:"travel_package_id" binding:"required"`
	Status          entity.BookingStatus `json:"status"`
	NumberOfPeople  int                  `json:"number_of_people" binding:"required,min=1"`
	TotalPrice      float64              `json:"total_price"`
	Notes           string               `json:"notes"`
}

// UpdateBookingRequest представляет данные для обновления бронирования
type UpdateBookingRequest struct {
	Status         entity.BookingStatus `json:"status" binding:"required"`
	NumberOfPeople int                  `json:"number_of_people" binding:"required,min=1"`
	TotalPrice     float64              `json:"total_price"`
	Notes          string               `json:"notes"`
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	packageRepo  repository.PackageRepository
	customerRepo repository.CustomerRepository
	cache        redis.Cache
	pageSize     int
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	packageRepo repository.PackageRepository,
	customerRepo repository.CustomerRepository,
	cache redis.Cache,
	pageSize int,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		customerRepo: customerRepo,
		cache:        cache,
		pageSize:     pageSize,
	}
}

// CreateBooking создает бронирование и удерживает места тура.
// Проверка мест здесь предварительная, окончательная выполняется
// в транзакции репозитория под блокировкой строки тура.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error) {
	status := req.Status
	if status == "" {
		status = entity.BookingStatusPending
	}
	if !status.IsValid() {
		return nil, entity.ErrInvalidBookingStatus
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	pkg, err := s.packageRepo.GetByID(ctx, req.TravelPackageID)
	if err != nil {
		return nil, err
	}

	if status.HoldsSpots() && req.NumberOfPeople > pkg.AvailableSpots {
		return nil, fmt.Errorf("requested %d of %d spots: %w",
			req.NumberOfPeople, pkg.AvailableSpots, entity.ErrNotEnoughSpots)
	}

	totalPrice := req.TotalPrice
	if totalPrice <= 0 {
		totalPrice = entity.CalculateTotalPrice(req.NumberOfPeople, pkg.Price)
	}

	booking := &entity.Booking{
		CustomerID:      req.CustomerID,
		TravelPackageID: req.TravelPackageID,
		Status:          status,
		NumberOfPeople:  req.NumberOfPeople,
		TotalPrice:      totalPrice,
		Notes:           req.Notes,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"package_id":  booking.TravelPackageID,
		"customer_id": booking.CustomerID,
		"people":      booking.NumberOfPeople,
	}).Info("booking created")

	s.invalidate(booking.TravelPackageID)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*entity.BookingWithDetails, error) {
	return s.bookingRepo.GetDetails(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context, filter *repository.BookingFilter, page int) ([]*entity.BookingWithDetails, *Pagination, error) {
	page, offset := pageOffset(page, s.pageSize)

	bookings, total, err := s.bookingRepo.List(ctx, filter, s.pageSize, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, newPagination(total, page, s.pageSize), nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id int64, req *UpdateBookingRequest) (*entity.Booking, error) {
	if !req.Status.IsValid() {
		return nil, entity.ErrInvalidBookingStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Status = req.Status
	booking.NumberOfPeople = req.NumberOfPeople
	booking.Notes = req.Notes

	if req.TotalPrice > 0 {
		booking.TotalPrice = req.TotalPrice
	} else {
		pkg, err := s.packageRepo.GetByID(ctx, booking.TravelPackageID)
		if err != nil {
			return nil, err
		}
		booking.TotalPrice = entity.CalculateTotalPrice(req.NumberOfPeople, pkg.Price)
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidate(booking.TravelPackageID)
	return booking, nil
}

// CancelBooking переводит бронирование в cancelled и возвращает места туру
func (s *bookingService) CancelBooking(ctx context.Context, id int64) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return booking, nil
	}

	booking.Status = entity.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithField("booking_id", id).Info("booking cancelled")

	s.invalidate(booking.TravelPackageID)
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(booking.TravelPackageID)
	return nil
}

func (s *bookingService) invalidate(packageID int64) {
	if err := s.cache.DeletePackage(packageID); err != nil {
		logrus.WithError(err).Warn("failed to invalidate package cache")
	}
	if err := s.cache.DeleteSummary(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate summary cache")
	}
}
