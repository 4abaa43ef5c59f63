package service

import (
	"context"
	"sort"
	"strings"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/entity"
)

// Простые in-memory реализации репозиториев для тестов сервисного слоя

type fakeDestinationRepo struct {
	nextID       int64
	destinations map[int64]*entity.Destination
	packages     *fakePackageRepo
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{destinations: make(map[int64]*entity.Destination)}
}

func (r *fakeDestinationRepo) Create(_ context.Context, destination *entity.Destination) error {
	r.nextID++
	destination.ID = r.nextID
	copied := *destination
	r.destinations[destination.ID] = &copied
	return nil
}

func (r *fakeDestinationRepo) GetByID(_ context.Context, id int64) (*entity.Destination, error) {
	destination, ok := r.destinations[id]
	if !ok {
		return nil, entity.ErrDestinationNotFound
	}
	copied := *destination
	return &copied, nil
}

func (r *fakeDestinationRepo) GetByNameAndCountry(_ context.Context, name, country string) (*entity.Destination, error) {
	for _, destination := range r.destinations {
		if destination.Name == name && destination.Country == country {
			copied := *destination
			return &copied, nil
		}
	}
	return nil, entity.ErrDestinationNotFound
}

func (r *fakeDestinationRepo) List(_ context.Context, filter *repository.DestinationFilter, limit, offset int) ([]*entity.Destination, int64, error) {
	var matched []*entity.Destination
	for _, destination := range r.destinations {
		if filter != nil && filter.Search != "" &&
			!strings.Contains(strings.ToLower(destination.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(destination.Country), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, destination)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeDestinationRepo) ListCountries(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var countries []string
	for _, destination := range r.destinations {
		if !seen[destination.Country] {
			seen[destination.Country] = true
			countries = append(countries, destination.Country)
		}
	}
	sort.Strings(countries)
	return countries, nil
}

func (r *fakeDestinationRepo) Update(_ context.Context, destination *entity.Destination) error {
	if _, ok := r.destinations[destination.ID]; !ok {
		return entity.ErrDestinationNotFound
	}
	copied := *destination
	r.destinations[destination.ID] = &copied
	return nil
}

func (r *fakeDestinationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.destinations[id]; !ok {
		return entity.ErrDestinationNotFound
	}
	// Туры направления уходят каскадом, как по внешнему ключу
	if r.packages != nil {
		for pkgID, pkg := range r.packages.packages {
			if pkg.DestinationID == id {
				if err := r.packages.Delete(ctx, pkgID); err != nil {
					return err
				}
			}
		}
	}
	delete(r.destinations, id)
	return nil
}

func (r *fakeDestinationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.destinations)), nil
}

type fakePackageRepo struct {
	nextID   int64
	packages map[int64]*entity.TravelPackage
	bookings *fakeBookingRepo
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[int64]*entity.TravelPackage)}
}

func (r *fakePackageRepo) Create(_ context.Context, pkg *entity.TravelPackage) error {
	r.nextID++
	pkg.ID = r.nextID
	copied := *pkg
	r.packages[pkg.ID] = &copied
	return nil
}

func (r *fakePackageRepo) GetByID(_ context.Context, id int64) (*entity.PackageWithDestination, error) {
	pkg, ok := r.packages[id]
	if !ok {
		return nil, entity.ErrPackageNotFound
	}
	return &entity.PackageWithDestination{TravelPackage: *pkg}, nil
}

func (r *fakePackageRepo) GetByDestinationAndName(_ context.Context, destinationID int64, name string) (*entity.TravelPackage, error) {
	for _, pkg := range r.packages {
		if pkg.DestinationID == destinationID && pkg.Name == name {
			copied := *pkg
			return &copied, nil
		}
	}
	return nil, entity.ErrPackageNotFound
}

func (r *fakePackageRepo) List(_ context.Context, filter *repository.PackageFilter, limit, offset int) ([]*entity.PackageWithDestination, int64, error) {
	var matched []*entity.PackageWithDestination
	for _, pkg := range r.packages {
		if filter != nil {
			if filter.DestinationID != 0 && pkg.DestinationID != filter.DestinationID {
				continue
			}
			if filter.MinPrice != nil && pkg.Price < *filter.MinPrice {
				continue
			}
			if filter.MaxPrice != nil && pkg.Price > *filter.MaxPrice {
				continue
			}
			if filter.AvailableOnly && pkg.AvailableSpots <= 0 {
				continue
			}
			if filter.Search != "" && !strings.Contains(strings.ToLower(pkg.Name), strings.ToLower(filter.Search)) {
				continue
			}
		}
		matched = append(matched, &entity.PackageWithDestination{TravelPackage: *pkg})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakePackageRepo) ListByDestination(_ context.Context, destinationID int64) ([]*entity.TravelPackage, error) {
	var packages []*entity.TravelPackage
	for _, pkg := range r.packages {
		if pkg.DestinationID == destinationID {
			copied := *pkg
			packages = append(packages, &copied)
		}
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].ID < packages[j].ID })
	return packages, nil
}

func (r *fakePackageRepo) GetUpcomingAvailable(_ context.Context, limit int) ([]*entity.PackageWithDestination, error) {
	var packages []*entity.PackageWithDestination
	for _, pkg := range r.packages {
		if pkg.AvailableSpots > 0 {
			packages = append(packages, &entity.PackageWithDestination{TravelPackage: *pkg})
		}
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].StartDate.Time.Before(packages[j].StartDate.Time)
	})
	if limit > 0 && len(packages) > limit {
		packages = packages[:limit]
	}
	return packages, nil
}

func (r *fakePackageRepo) Update(_ context.Context, pkg *entity.TravelPackage) error {
	if _, ok := r.packages[pkg.ID]; !ok {
		return entity.ErrPackageNotFound
	}
	copied := *pkg
	r.packages[pkg.ID] = &copied
	return nil
}

func (r *fakePackageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.packages[id]; !ok {
		return entity.ErrPackageNotFound
	}
	// Бронирования тура уходят каскадом, как по внешнему ключу
	if r.bookings != nil {
		for bookingID, booking := range r.bookings.bookings {
			if booking.TravelPackageID == id {
				delete(r.bookings.bookings, bookingID)
			}
		}
	}
	delete(r.packages, id)
	return nil
}

func (r *fakePackageRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.packages)), nil
}

type fakeCustomerRepo struct {
	nextID    int64
	customers map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return entity.ErrEmailExists
		}
	}
	r.nextID++
	customer.ID = r.nextID
	copied := *customer
	r.customers[customer.ID] = &copied
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	copied := *customer
	return &copied, nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, customer := range r.customers {
		if customer.Email == email {
			copied := *customer
			return &copied, nil
		}
	}
	return nil, entity.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) List(_ context.Context, filter *repository.CustomerFilter, limit, offset int) ([]*entity.Customer, int64, error) {
	var matched []*entity.Customer
	for _, customer := range r.customers {
		matched = append(matched, customer)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return entity.ErrCustomerNotFound
	}
	copied := *customer
	r.customers[customer.ID] = &copied
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return entity.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

// fakeBookingRepo воспроизводит удержание мест так же,
// как транзакционная реализация на postgres
type fakeBookingRepo struct {
	nextID   int64
	bookings map[int64]*entity.Booking
	packages *fakePackageRepo
}

func newFakeBookingRepo(packages *fakePackageRepo) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings: make(map[int64]*entity.Booking),
		packages: packages,
	}
	packages.bookings = repo
	return repo
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	pkg, ok := r.packages.packages[booking.TravelPackageID]
	if !ok {
		return entity.ErrPackageNotFound
	}

	if booking.Status.HoldsSpots() {
		if booking.NumberOfPeople > pkg.AvailableSpots {
			return entity.ErrNotEnoughSpots
		}
		pkg.AvailableSpots -= booking.NumberOfPeople
	}

	if booking.TotalPrice <= 0 {
		booking.TotalPrice = entity.CalculateTotalPrice(booking.NumberOfPeople, pkg.Price)
	}

	r.nextID++
	booking.ID = r.nextID
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*entity.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetDetails(ctx context.Context, id int64) (*entity.BookingWithDetails, error) {
	booking, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.BookingWithDetails{Booking: *booking}, nil
}

func (r *fakeBookingRepo) GetByCustomerAndPackage(_ context.Context, customerID, packageID int64) (*entity.Booking, error) {
	for _, booking := range r.bookings {
		if booking.CustomerID == customerID && booking.TravelPackageID == packageID {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, entity.ErrBookingNotFound
}

func (r *fakeBookingRepo) List(_ context.Context, filter *repository.BookingFilter, limit, offset int) ([]*entity.BookingWithDetails, int64, error) {
	var matched []*entity.BookingWithDetails
	for _, booking := range r.bookings {
		if filter != nil {
			if filter.Status != "" && booking.Status != filter.Status {
				continue
			}
			if filter.CustomerID != 0 && booking.CustomerID != filter.CustomerID {
				continue
			}
		}
		matched = append(matched, &entity.BookingWithDetails{Booking: *booking})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeBookingRepo) ListByCustomer(_ context.Context, customerID int64) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.CustomerID == customerID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (r *fakeBookingRepo) ListByPackage(_ context.Context, packageID int64) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.TravelPackageID == packageID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	old, ok := r.bookings[booking.ID]
	if !ok {
		return entity.ErrBookingNotFound
	}

	pkg, ok := r.packages.packages[old.TravelPackageID]
	if !ok {
		return entity.ErrPackageNotFound
	}

	oldHold := 0
	if old.Status.HoldsSpots() {
		oldHold = old.NumberOfPeople
	}
	newHold := 0
	if booking.Status.HoldsSpots() {
		newHold = booking.NumberOfPeople
	}

	delta := newHold - oldHold
	if delta > pkg.AvailableSpots {
		return entity.ErrNotEnoughSpots
	}
	pkg.AvailableSpots -= delta

	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	booking, ok := r.bookings[id]
	if !ok {
		return entity.ErrBookingNotFound
	}

	if booking.Status.HoldsSpots() {
		if pkg, ok := r.packages.packages[booking.TravelPackageID]; ok {
			pkg.AvailableSpots += booking.NumberOfPeople
		}
	}

	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

type fakeAdminRepo struct {
	nextID int64
	admins map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*entity.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	if _, ok := r.admins[admin.Username]; ok {
		return entity.ErrInvalidInput
	}
	r.nextID++
	admin.ID = r.nextID
	copied := *admin
	r.admins[admin.Username] = &copied
	return nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, entity.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	for _, admin := range r.admins {
		if admin.ID == id {
			admin.PasswordHash = passwordHash
			return nil
		}
	}
	return entity.ErrAdminNotFound
}
