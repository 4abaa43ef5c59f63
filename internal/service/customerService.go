package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/entity"
)

// CreateCustomerRequest представляет данные для регистрации клиента
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Address   string `json:"address" binding:"required"`
}

// UpdateCustomerRequest представляет данные для обновления клиента
type UpdateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Address   string `json:"address" binding:"required"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
	bookingRepo  repository.BookingRepository
	pageSize     int
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	bookingRepo repository.BookingRepository,
	pageSize int,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		pageSize:     pageSize,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   req.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*entity.CustomerWithBookings, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer bookings: %w", err)
	}

	return &entity.CustomerWithBookings{
		Customer: *customer,
		Bookings: bookings,
	}, nil
}

func (s *customerService) ListCustomers(ctx context.Context, filter *repository.CustomerFilter, page int) ([]*entity.Customer, *Pagination, error) {
	page, offset := pageOffset(page, s.pageSize)

	customers, total, err := s.customerRepo.List(ctx, filter, s.pageSize, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, newPagination(total, page, s.pageSize), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.FirstName = strings.TrimSpace(req.FirstName)
	customer.LastName = strings.TrimSpace(req.LastName)
	customer.Email = strings.ToLower(strings.TrimSpace(req.Email))
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.Address = req.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	// Бронирования клиента уходят каскадом, но удерживаемые ими места
	// надо вернуть турам до удаления строк
	bookings, err := s.bookingRepo.ListByCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load customer bookings: %w", err)
	}

	for _, booking := range bookings {
		if err := s.bookingRepo.Delete(ctx, booking.ID); err != nil && err != entity.ErrBookingNotFound {
			return fmt.Errorf("failed to release booking %d: %w", booking.ID, err)
		}
	}

	return s.customerRepo.Delete(ctx, id)
}
