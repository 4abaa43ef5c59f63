package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ds124wfegd/travelbooker/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	// Каскады на внешних ключах реализуют правила удаления:
	// направление удаляет свои туры, тур и клиент удаляют свои бронирования
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS destinations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			country VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (name, country)
		)`,

		`CREATE TABLE IF NOT EXISTS travel_packages (
			id SERIAL PRIMARY KEY,
			destination_id INTEGER NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
			name VARCHAR(200) NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price > 0),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			duration_days INTEGER NOT NULL CHECK (duration_days >= 1),
			itinerary TEXT NOT NULL DEFAULT '',
			available_spots INTEGER NOT NULL CHECK (available_spots >= 0),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(20) NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			travel_package_id INTEGER NOT NULL REFERENCES travel_packages(id) ON DELETE CASCADE,
			booking_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			number_of_people INTEGER NOT NULL CHECK (number_of_people >= 1),
			total_price NUMERIC(10,2) NOT NULL CHECK (total_price > 0),
			notes TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_packages_destination_id ON travel_packages(destination_id)`,
		`CREATE INDEX IF NOT EXISTS idx_packages_start_date ON travel_packages(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_customer_id ON bookings(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_package_id ON bookings(travel_package_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_booking_date ON bookings(booking_date)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
