package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/database/redis"
	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/sirupsen/logrus"
)

// CreatePackageRequest представляет данные для создания тура
type CreatePackageRequest struct {
	DestinationID  int64           `json:"destination_id" binding:"required"`
	Name           string          `json:"name" binding:"required,max=200"`
	Price          float64         `json:"price" binding:"required"`
	StartDate      entity.DateOnly `json:"start_date" binding:"required"`
	EndDate        entity.DateOnly `json:"end_date" binding:"required"`
	DurationDays   int             `json:"duration_days" binding:"required,min=1"`
	Itinerary      string          `json:"itinerary" binding:"required"`
	AvailableSpots int             `json:"available_spots"`
}

// UpdatePackageRequest представляет данные для обновления тура
type UpdatePackageRequest struct {
	DestinationID  int64           `json:"destination_id" binding:"required"`
	Name           string          `json:"name" binding:"required,max=200"`
	Price          float64         `json:"price" binding:"required"`
	StartDate      entity.DateOnly `json:"start_date" binding:"required"`
	EndDate        entity.DateOnly `json:"end_date" binding:"required"`
	DurationDays   int             `json:"duration_days" binding:"required,min=1"`
	Itinerary      string          `json:"itinerary" binding:"required"`
	AvailableSpots int             `json:"available_spots"`
}

type packageService struct {
	packageRepo repository.PackageRepository
	bookingRepo repository.BookingRepository
	cache       redis.Cache
	pageSize    int
}

func NewPackageService(
	packageRepo repository.PackageRepository,
	bookingRepo repository.BookingRepository,
	cache redis.Cache,
	pageSize int,
) PackageService {
	return &packageService{
		packageRepo: packageRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		pageSize:    pageSize,
	}
}

// validatePackage проверяет правила предметной области до обращения к базе
func validatePackage(price float64, start, end entity.DateOnly, spots int) error {
	if price <= 0 {
		return entity.ErrInvalidPrice
	}
	if !end.After(start) {
		return entity.ErrInvalidDateRange
	}
	if spots < 0 {
		return entity.ErrNegativeSpots
	}
	return nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *CreatePackageRequest) (*entity.TravelPackage, error) {
	if err := validatePackage(req.Price, req.StartDate, req.EndDate, req.AvailableSpots); err != nil {
		return nil, err
	}

	pkg := &entity.TravelPackage{
		DestinationID:  req.DestinationID,
		Name:           strings.TrimSpace(req.Name),
		Price:          req.Price,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DurationDays:   req.DurationDays,
		Itinerary:      req.Itinerary,
		AvailableSpots: req.AvailableSpots,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	s.invalidate(pkg.ID)
	return pkg, nil
}

func (s *packageService) GetPackage(ctx context.Context, id int64) (*entity.PackageDetails, error) {
	pkg, err := s.cache.GetPackage(id)
	if err != nil {
		pkg, err = s.packageRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetPackage(pkg); err != nil {
			logrus.WithError(err).Warn("failed to cache package")
		}
	}

	bookings, err := s.bookingRepo.ListByPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load package bookings: %w", err)
	}

	return &entity.PackageDetails{
		PackageWithDestination: *pkg,
		Bookings:               bookings,
	}, nil
}

func (s *packageService) ListPackages(ctx context.Context, filter *repository.PackageFilter, page int) ([]*entity.PackageWithDestination, *Pagination, error) {
	page, offset := pageOffset(page, s.pageSize)

	packages, total, err := s.packageRepo.List(ctx, filter, s.pageSize, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return packages, newPagination(total, page, s.pageSize), nil
}

func (s *packageService) UpdatePackage(ctx context.Context, id int64, req *UpdatePackageRequest) (*entity.TravelPackage, error) {
	if err := validatePackage(req.Price, req.StartDate, req.EndDate, req.AvailableSpots); err != nil {
		return nil, err
	}

	existing, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg := &existing.TravelPackage
	pkg.DestinationID = req.DestinationID
	pkg.Name = strings.TrimSpace(req.Name)
	pkg.Price = req.Price
	pkg.StartDate = req.StartDate
	pkg.EndDate = req.EndDate
	pkg.DurationDays = req.DurationDays
	pkg.Itinerary = req.Itinerary
	pkg.AvailableSpots = req.AvailableSpots

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	s.invalidate(id)
	return pkg, nil
}

func (s *packageService) DeletePackage(ctx context.Context, id int64) error {
	// Бронирования тура уходят каскадом
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

func (s *packageService) invalidate(id int64) {
	if err := s.cache.DeletePackage(id); err != nil {
		logrus.WithError(err).Warn("failed to invalidate package cache")
	}
	if err := s.cache.DeleteSummary(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate summary cache")
	}
}
