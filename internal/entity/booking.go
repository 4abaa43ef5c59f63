package entity

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// HoldsSpots сообщает, удерживает ли бронирование места тура.
// Отменённое бронирование мест не занимает.
func (s BookingStatus) HoldsSpots() bool {
	return s != BookingStatusCancelled
}

type Booking struct {
	ID              int64         `json:"id" db:"id"`
	CustomerID      int64         `json:"customer_id" db:"customer_id"`
	TravelPackageID int64         `json:"travel_package_id" db:"travel_package_id"`
	BookingDate     time.Time     `json:"booking_date" db:"booking_date"`
	Status          BookingStatus `json:"status" db:"status"`
	NumberOfPeople  int           `json:"number_of_people" db:"number_of_people"`
	TotalPrice      float64       `json:"total_price" db:"total_price"`
	Notes           string        `json:"notes" db:"notes"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingWithDetails дополняет бронирование именем клиента и названием тура
type BookingWithDetails struct {
	Booking
	CustomerFirstName string `json:"customer_first_name"`
	CustomerLastName  string `json:"customer_last_name"`
	PackageName       string `json:"package_name"`
}

// CalculateTotalPrice вычисляет итоговую стоимость: люди × цена тура, с округлением до центов
func CalculateTotalPrice(numberOfPeople int, packagePrice float64) float64 {
	return math.Round(float64(numberOfPeople)*packagePrice*100) / 100
}
