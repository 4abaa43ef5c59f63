package entity

import (
	"time"
)

type TravelPackage struct {
	ID             int64     `json:"id" db:"id"`
	DestinationID  int64     `json:"destination_id" db:"destination_id"`
	Name           string    `json:"name" db:"name"`
	Price          float64   `json:"price" db:"price"`
	StartDate      DateOnly  `json:"start_date" db:"start_date"`
	EndDate        DateOnly  `json:"end_date" db:"end_date"`
	DurationDays   int       `json:"duration_days" db:"duration_days"`
	Itinerary      string    `json:"itinerary" db:"itinerary"`
	AvailableSpots int       `json:"available_spots" db:"available_spots"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// PackageWithDestination дополняет тур названием направления для списков и деталей
type PackageWithDestination struct {
	TravelPackage
	DestinationName    string `json:"destination_name"`
	DestinationCountry string `json:"destination_country"`
}

// PackageDetails содержит тур вместе с его бронированиями
type PackageDetails struct {
	PackageWithDestination
	Bookings []*Booking `json:"bookings"`
}

// IsAvailable сообщает, остались ли свободные места
func (p *TravelPackage) IsAvailable() bool {
	return p.AvailableSpots > 0
}
