package entity

import "time"

type Customer struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CustomerWithBookings расширяет клиента списком его бронирований
type CustomerWithBookings struct {
	Customer
	Bookings []*Booking `json:"bookings"`
}

// FullName возвращает полное имя клиента
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
