package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/sirupsen/logrus"
)

// SeedReport показывает, сколько записей создано и сколько уже было
type SeedReport struct {
	DestinationsCreated int `json:"destinations_created"`
	PackagesCreated     int `json:"packages_created"`
	CustomersCreated    int `json:"customers_created"`
	BookingsCreated     int `json:"bookings_created"`
	AdminCreated        bool `json:"admin_created"`
}

const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

type seedService struct {
	destinationRepo repository.DestinationRepository
	packageRepo     repository.PackageRepository
	customerRepo    repository.CustomerRepository
	bookingRepo     repository.BookingRepository
	adminRepo       repository.AdminRepository
}

func NewSeedService(
	destinationRepo repository.DestinationRepository,
	packageRepo repository.PackageRepository,
	customerRepo repository.CustomerRepository,
	bookingRepo repository.BookingRepository,
	adminRepo repository.AdminRepository,
) SeedService {
	return &seedService{
		destinationRepo: destinationRepo,
		packageRepo:     packageRepo,
		customerRepo:    customerRepo,
		bookingRepo:     bookingRepo,
		adminRepo:       adminRepo,
	}
}

type seedPackage struct {
	destination    int // индекс в списке направлений
	name           string
	price          float64
	startInDays    int
	durationDays   int
	itinerary      string
	availableSpots int
}

type seedBooking struct {
	customer int // индекс в списке клиентов
	pkg      int // индекс в списке туров
	status   entity.BookingStatus
	people   int
	notes    string
}

// Seed наполняет базу демонстрационными данными. Повторный запуск
// ничего не дублирует: записи ищутся по естественным ключам.
func (s *seedService) Seed(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{}

	adminCreated, err := s.seedAdmin(ctx)
	if err != nil {
		return nil, err
	}
	report.AdminCreated = adminCreated

	destinations, err := s.seedDestinations(ctx, report)
	if err != nil {
		return nil, err
	}

	packages, err := s.seedPackages(ctx, destinations, report)
	if err != nil {
		return nil, err
	}

	customers, err := s.seedCustomers(ctx, report)
	if err != nil {
		return nil, err
	}

	if err := s.seedBookings(ctx, customers, packages, report); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"destinations": report.DestinationsCreated,
		"packages":     report.PackagesCreated,
		"customers":    report.CustomersCreated,
		"bookings":     report.BookingsCreated,
	}).Info("seeding complete")

	return report, nil
}

func (s *seedService) seedAdmin(ctx context.Context) (bool, error) {
	hash, err := HashPassword(seedAdminPassword)
	if err != nil {
		return false, err
	}

	admin, err := s.adminRepo.GetByUsername(ctx, seedAdminUsername)
	if err == nil {
		// Пароль сбрасывается к известному значению, как и при первом запуске
		return false, s.adminRepo.UpdatePasswordHash(ctx, admin.ID, hash)
	}
	if err != entity.ErrAdminNotFound {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	admin = &entity.Admin{Username: seedAdminUsername, PasswordHash: hash}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	return true, nil
}

func (s *seedService) seedDestinations(ctx context.Context, report *SeedReport) ([]*entity.Destination, error) {
	data := []entity.Destination{
		{
			Name:        "Tokyo",
			Country:     "Japan",
			Description: "Experience the vibrant blend of traditional and modern culture in Japan's bustling capital city. Visit ancient temples, enjoy world-class sushi, and explore the neon-lit streets of Shibuya and Shinjuku.",
			ImageURL:    "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf",
		},
		{
			Name:        "Paris",
			Country:     "France",
			Description: "The City of Light offers iconic landmarks like the Eiffel Tower, world-renowned museums including the Louvre, charming cafes, and exquisite French cuisine.",
			ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
		},
		{
			Name:        "Bali",
			Country:     "Indonesia",
			Description: "A tropical paradise featuring stunning beaches, lush rice terraces, ancient temples, and a rich cultural heritage. Perfect for relaxation and adventure.",
			ImageURL:    "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
		},
		{
			Name:        "New York City",
			Country:     "USA",
			Description: "The city that never sleeps offers world-class museums, Broadway shows, iconic landmarks like the Statue of Liberty, and diverse neighborhoods to explore.",
			ImageURL:    "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9",
		},
		{
			Name:        "Santorini",
			Country:     "Greece",
			Description: "Famous for its white-washed buildings with blue domes, stunning sunsets, beautiful beaches, and excellent Mediterranean cuisine.",
			ImageURL:    "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e",
		},
	}

	destinations := make([]*entity.Destination, 0, len(data))
	for i := range data {
		destination := &data[i]

		existing, err := s.destinationRepo.GetByNameAndCountry(ctx, destination.Name, destination.Country)
		if err == nil {
			destinations = append(destinations, existing)
			continue
		}
		if err != entity.ErrDestinationNotFound {
			return nil, fmt.Errorf("failed to look up destination %q: %w", destination.Name, err)
		}

		if err := s.destinationRepo.Create(ctx, destination); err != nil {
			return nil, fmt.Errorf("failed to seed destination %q: %w", destination.Name, err)
		}
		report.DestinationsCreated++
		destinations = append(destinations, destination)
	}

	return destinations, nil
}

func (s *seedService) seedPackages(ctx context.Context, destinations []*entity.Destination, report *SeedReport) ([]*entity.TravelPackage, error) {
	data := []seedPackage{
		{
			destination:  0,
			name:         "Tokyo Adventure Week",
			price:        2499.00,
			startInDays:  30,
			durationDays: 7,
			itinerary: `Day 1: Arrival in Tokyo, hotel check-in, evening walk in Shibuya
Day 2: Visit Senso-ji Temple, Akihabara electronics district
Day 3: Day trip to Mt. Fuji and Hakone
Day 4: Tsukiji Fish Market, Imperial Palace, Ginza shopping
Day 5: Harajuku, Meiji Shrine, teamLab Borderless
Day 6: Day trip to Nikko
Day 7: Last-minute shopping, departure`,
			availableSpots: 15,
		},
		{
			destination:  0,
			name:         "Tokyo Food & Culture Tour",
			price:        1899.00,
			startInDays:  45,
			durationDays: 5,
			itinerary: `Day 1: Arrival, traditional kaiseki dinner
Day 2: Sushi making class, Tsukiji market tour
Day 3: Ramen museum, traditional tea ceremony
Day 4: Street food tour in Asakusa
Day 5: Last breakfast, departure`,
			availableSpots: 10,
		},
		{
			destination:  1,
			name:         "Romantic Paris Getaway",
			price:        2199.00,
			startInDays:  60,
			durationDays: 6,
			itinerary: `Day 1: Arrival, Seine River cruise
Day 2: Eiffel Tower, Champs-Élysées
Day 3: Louvre Museum, Latin Quarter
Day 4: Versailles Palace day trip
Day 5: Montmartre, Sacré-Cœur
Day 6: Last-minute shopping, departure`,
			availableSpots: 20,
		},
		{
			destination:  2,
			name:         "Bali Beach & Culture",
			price:        1599.00,
			startInDays:  40,
			durationDays: 8,
			itinerary: `Day 1: Arrival in Bali, beach resort check-in
Day 2: Ubud rice terraces, monkey forest
Day 3: Temple tour (Tanah Lot, Uluwatu)
Day 4: Snorkeling and water sports
Day 5: Traditional Balinese cooking class
Day 6: Spa day and relaxation
Day 7: Sunrise trek to Mt. Batur
Day 8: Departure`,
			availableSpots: 12,
		},
		{
			destination:  3,
			name:         "New York City Explorer",
			price:        1999.00,
			startInDays:  20,
			durationDays: 5,
			itinerary: `Day 1: Arrival, Times Square, Broadway show
Day 2: Statue of Liberty, Ellis Island, 9/11 Memorial
Day 3: Central Park, Metropolitan Museum of Art
Day 4: Brooklyn Bridge, DUMBO, Williamsburg
Day 5: Last-minute shopping, departure`,
			availableSpots: 18,
		},
	}

	today := time.Now()
	packages := make([]*entity.TravelPackage, 0, len(data))

	for _, item := range data {
		destinationID := destinations[item.destination].ID

		existing, err := s.packageRepo.GetByDestinationAndName(ctx, destinationID, item.name)
		if err == nil {
			packages = append(packages, existing)
			continue
		}
		if err != entity.ErrPackageNotFound {
			return nil, fmt.Errorf("failed to look up package %q: %w", item.name, err)
		}

		start := today.AddDate(0, 0, item.startInDays)
		end := start.AddDate(0, 0, item.durationDays)
		pkg := &entity.TravelPackage{
			DestinationID:  destinationID,
			Name:           item.name,
			Price:          item.price,
			StartDate:      entity.NewDateOnly(start.Year(), start.Month(), start.Day()),
			EndDate:        entity.NewDateOnly(end.Year(), end.Month(), end.Day()),
			DurationDays:   item.durationDays,
			Itinerary:      item.itinerary,
			AvailableSpots: item.availableSpots,
		}

		if err := s.packageRepo.Create(ctx, pkg); err != nil {
			return nil, fmt.Errorf("failed to seed package %q: %w", item.name, err)
		}
		report.PackagesCreated++
		packages = append(packages, pkg)
	}

	return packages, nil
}

func (s *seedService) seedCustomers(ctx context.Context, report *SeedReport) ([]*entity.Customer, error) {
	data := []entity.Customer{
		{FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Phone: "555-0101", Address: "123 Main St, Boston, MA 02101"},
		{FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@email.com", Phone: "555-0102", Address: "456 Oak Ave, Cambridge, MA 02138"},
		{FirstName: "Michael", LastName: "Chen", Email: "mchen@email.com", Phone: "555-0103", Address: "789 Elm St, Brookline, MA 02445"},
		{FirstName: "Emily", LastName: "Williams", Email: "emily.w@email.com", Phone: "555-0104", Address: "321 Pine Rd, Newton, MA 02458"},
		{FirstName: "David", LastName: "Martinez", Email: "david.m@email.com", Phone: "555-0105", Address: "654 Maple Dr, Somerville, MA 02143"},
	}

	customers := make([]*entity.Customer, 0, len(data))
	for i := range data {
		customer := &data[i]

		existing, err := s.customerRepo.GetByEmail(ctx, customer.Email)
		if err == nil {
			customers = append(customers, existing)
			continue
		}
		if err != entity.ErrCustomerNotFound {
			return nil, fmt.Errorf("failed to look up customer %q: %w", customer.Email, err)
		}

		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, fmt.Errorf("failed to seed customer %q: %w", customer.Email, err)
		}
		report.CustomersCreated++
		customers = append(customers, customer)
	}

	return customers, nil
}

func (s *seedService) seedBookings(ctx context.Context, customers []*entity.Customer, packages []*entity.TravelPackage, report *SeedReport) error {
	data := []seedBooking{
		{customer: 0, pkg: 0, status: entity.BookingStatusConfirmed, people: 2, notes: "Vegetarian meal preferences"},
		{customer: 1, pkg: 2, status: entity.BookingStatusConfirmed, people: 2, notes: "Anniversary trip"},
		{customer: 2, pkg: 3, status: entity.BookingStatusPending, people: 1, notes: "Solo traveler"},
		{customer: 3, pkg: 4, status: entity.BookingStatusConfirmed, people: 4, notes: "Family trip with 2 children"},
		{customer: 4, pkg: 1, status: entity.BookingStatusPending, people: 1, notes: "Interested in photography tours"},
	}

	for _, item := range data {
		customerID := customers[item.customer].ID
		pkg := packages[item.pkg]

		_, err := s.bookingRepo.GetByCustomerAndPackage(ctx, customerID, pkg.ID)
		if err == nil {
			continue
		}
		if err != entity.ErrBookingNotFound {
			return fmt.Errorf("failed to look up booking: %w", err)
		}

		booking := &entity.Booking{
			CustomerID:      customerID,
			TravelPackageID: pkg.ID,
			Status:          item.status,
			NumberOfPeople:  item.people,
			TotalPrice:      entity.CalculateTotalPrice(item.people, pkg.Price),
			Notes:           item.notes,
		}

		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("failed to seed booking for %s: %w", customers[item.customer].Email, err)
		}
		report.BookingsCreated++
	}

	return nil
}
