package entity

import "errors"

var (
	// Destination errors
	ErrDestinationNotFound = errors.New("destination not found")

	// Package errors
	ErrPackageNotFound  = errors.New("travel package not found")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrNegativeSpots    = errors.New("available spots cannot be negative")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailExists      = errors.New("email already registered")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotEnoughSpots       = errors.New("not enough available spots")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// Auth errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
