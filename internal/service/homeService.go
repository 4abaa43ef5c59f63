package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/database/redis"
	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/sirupsen/logrus"
)

const (
	featuredDestinations = 3
	upcomingPackages     = 4
)

type homeService struct {
	destinationRepo repository.DestinationRepository
	packageRepo     repository.PackageRepository
	bookingRepo     repository.BookingRepository
	cache           redis.Cache
}

func NewHomeService(
	destinationRepo repository.DestinationRepository,
	packageRepo repository.PackageRepository,
	bookingRepo repository.BookingRepository,
	cache redis.Cache,
) HomeService {
	return &homeService{
		destinationRepo: destinationRepo,
		packageRepo:     packageRepo,
		bookingRepo:     bookingRepo,
		cache:           cache,
	}
}

func (s *homeService) GetSummary(ctx context.Context) (*entity.HomeSummary, error) {
	if summary, err := s.cache.GetSummary(); err == nil {
		return summary, nil
	}

	summary := &entity.HomeSummary{}

	var err error
	if summary.TotalDestinations, err = s.destinationRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count destinations: %w", err)
	}
	if summary.TotalPackages, err = s.packageRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count packages: %w", err)
	}
	if summary.TotalBookings, err = s.bookingRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	featured, _, err := s.destinationRepo.List(ctx, nil, featuredDestinations, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured destinations: %w", err)
	}
	summary.FeaturedDestinations = featured

	upcoming, err := s.packageRepo.GetUpcomingAvailable(ctx, upcomingPackages)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming packages: %w", err)
	}
	summary.UpcomingPackages = upcoming

	if err := s.cache.SetSummary(summary); err != nil {
		logrus.WithError(err).Warn("failed to cache home summary")
	}

	return summary, nil
}
