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

// CreateDestinationRequest представляет данные для создания направления
type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Country     string `json:"country" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500"`
}

// UpdateDestinationRequest представляет данные для обновления направления
type UpdateDestinationRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Country     string `json:"country" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500"`
}

type destinationService struct {
	destinationRepo repository.DestinationRepository
	packageRepo     repository.PackageRepository
	cache           redis.Cache
	pageSize        int
}

func NewDestinationService(
	destinationRepo repository.DestinationRepository,
	packageRepo repository.PackageRepository,
	cache redis.Cache,
	pageSize int,
) DestinationService {
	return &destinationService{
		destinationRepo: destinationRepo,
		packageRepo:     packageRepo,
		cache:           cache,
		pageSize:        pageSize,
	}
}

func (s *destinationService) CreateDestination(ctx context.Context, req *CreateDestinationRequest) (*entity.Destination, error) {
	destination := &entity.Destination{
		Name:        strings.TrimSpace(req.Name),
		Country:     strings.TrimSpace(req.Country),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if destination.Name == "" || destination.Country == "" {
		return nil, fmt.Errorf("name and country are required: %w", entity.ErrInvalidInput)
	}

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}

	s.invalidate(destination.ID)
	return destination, nil
}

func (s *destinationService) GetDestination(ctx context.Context, id int64) (*entity.DestinationWithPackages, error) {
	destination, err := s.cache.GetDestination(id)
	if err != nil {
		destination, err = s.destinationRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetDestination(destination); err != nil {
			logrus.WithError(err).Warn("failed to cache destination")
		}
	}

	packages, err := s.packageRepo.ListByDestination(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination packages: %w", err)
	}

	return &entity.DestinationWithPackages{
		Destination: *destination,
		Packages:    packages,
	}, nil
}

func (s *destinationService) ListDestinations(ctx context.Context, filter *repository.DestinationFilter, page int) ([]*entity.Destination, *Pagination, error) {
	page, offset := pageOffset(page, s.pageSize)

	destinations, total, err := s.destinationRepo.List(ctx, filter, s.pageSize, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	return destinations, newPagination(total, page, s.pageSize), nil
}

func (s *destinationService) UpdateDestination(ctx context.Context, id int64, req *UpdateDestinationRequest) (*entity.Destination, error) {
	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	destination.Name = strings.TrimSpace(req.Name)
	destination.Country = strings.TrimSpace(req.Country)
	destination.Description = req.Description
	destination.ImageURL = req.ImageURL

	if destination.Name == "" || destination.Country == "" {
		return nil, fmt.Errorf("name and country are required: %w", entity.ErrInvalidInput)
	}

	if err := s.destinationRepo.Update(ctx, destination); err != nil {
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}

	s.invalidate(id)
	return destination, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, id int64) error {
	// Туры и бронирования направления уходят каскадом, кэш их деталей
	// чистим до удаления, пока список ещё доступен
	packages, err := s.packageRepo.ListByDestination(ctx, id)
	if err == nil {
		for _, pkg := range packages {
			if err := s.cache.DeletePackage(pkg.ID); err != nil {
				logrus.WithError(err).Warn("failed to invalidate package cache")
			}
		}
	}

	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

func (s *destinationService) ListCountries(ctx context.Context) ([]string, error) {
	return s.destinationRepo.ListCountries(ctx)
}

func (s *destinationService) invalidate(id int64) {
	if err := s.cache.DeleteDestination(id); err != nil {
		logrus.WithError(err).Warn("failed to invalidate destination cache")
	}
	if err := s.cache.DeleteSummary(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate summary cache")
	}
}
