package entity

import (
	"time"
)

type Destination struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Country     string    `json:"country" db:"country"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DestinationWithPackages расширяет направление списком его туров
type DestinationWithPackages struct {
	Destination
	Packages []*TravelPackage `json:"packages"`
}

func (d *Destination) String() string {
	return d.Name + ", " + d.Country
}
