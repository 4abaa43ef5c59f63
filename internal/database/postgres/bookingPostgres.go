package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/travelbooker/internal/entity"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// lockPackageSpots блокирует строку тура и возвращает цену и свободные места.
// Вызывается только внутри открытой транзакции.
func lockPackageSpots(ctx context.Context, tx *sql.Tx, packageID int64) (price float64, spots int, err error) {
	query := `SELECT price, available_spots FROM travel_packages WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, packageID).Scan(&price, &spots)
	if err == sql.ErrNoRows {
		return 0, 0, entity.ErrPackageNotFound
	}
	return price, spots, err
}

func adjustPackageSpots(ctx context.Context, tx *sql.Tx, packageID int64, delta int) error {
	query := `UPDATE travel_packages SET available_spots = available_spots + $1, updated_at = $2 WHERE id = $3`
	_, err := tx.ExecContext(ctx, query, delta, time.Now(), packageID)
	return err
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	price, spots, err := lockPackageSpots(ctx, tx, booking.TravelPackageID)
	if err != nil {
		return err
	}

	hold := 0
	if booking.Status.HoldsSpots() {
		if booking.NumberOfPeople > spots {
			return entity.ErrNotEnoughSpots
		}
		hold = booking.NumberOfPeople
	}

	if booking.TotalPrice <= 0 {
		booking.TotalPrice = entity.CalculateTotalPrice(booking.NumberOfPeople, price)
	}

	now := time.Now()
	booking.BookingDate = now

	query := `
		INSERT INTO bookings
			(customer_id, travel_package_id, booking_date, status, number_of_people, total_price, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		booking.CustomerID,
		booking.TravelPackageID,
		booking.BookingDate,
		booking.Status,
		booking.NumberOfPeople,
		booking.TotalPrice,
		booking.Notes,
		now,
	).Scan(&booking.ID)

	if isForeignKeyViolation(err) {
		return entity.ErrCustomerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if hold > 0 {
		if err := adjustPackageSpots(ctx, tx, booking.TravelPackageID, -hold); err != nil {
			return fmt.Errorf("failed to hold package spots: %w", err)
		}
	}

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, customer_id, travel_package_id, booking_date, status,
		       number_of_people, total_price, notes, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.TravelPackageID,
		&booking.BookingDate,
		&booking.Status,
		&booking.NumberOfPeople,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

const bookingDetailsColumns = `
	b.id, b.customer_id, b.travel_package_id, b.booking_date, b.status,
	b.number_of_people, b.total_price, b.notes, b.updated_at,
	c.first_name, c.last_name, p.name
`

func scanBookingDetails(row interface {
	Scan(dest ...any) error
}, booking *entity.BookingWithDetails) error {
	return row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.TravelPackageID,
		&booking.BookingDate,
		&booking.Status,
		&booking.NumberOfPeople,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.UpdatedAt,
		&booking.CustomerFirstName,
		&booking.CustomerLastName,
		&booking.PackageName,
	)
}

func (r *bookingRepository) GetDetails(ctx context.Context, id int64) (*entity.BookingWithDetails, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN travel_packages p ON p.id = b.travel_package_id
		WHERE b.id = $1
	`, bookingDetailsColumns)

	var booking entity.BookingWithDetails
	err := scanBookingDetails(r.db.QueryRowContext(ctx, query, id), &booking)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) GetByCustomerAndPackage(ctx context.Context, customerID, packageID int64) (*entity.Booking, error) {
	query := `
		SELECT id, customer_id, travel_package_id, booking_date, status,
		       number_of_people, total_price, notes, updated_at
		FROM bookings
		WHERE customer_id = $1 AND travel_package_id = $2
		ORDER BY booking_date DESC
		LIMIT 1
	`

	var booking entity.Booking
	err := r.db.QueryRowContext(ctx, query, customerID, packageID).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.TravelPackageID,
		&booking.BookingDate,
		&booking.Status,
		&booking.NumberOfPeople,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter *BookingFilter, limit, offset int) ([]*entity.BookingWithDetails, int64, error) {
	wb := &whereBuilder{}

	if filter != nil {
		if filter.Search != "" {
			pattern := likePattern(filter.Search)
			wb.And("(c.first_name ILIKE ? OR c.last_name ILIKE ? OR p.name ILIKE ?)", pattern, pattern, pattern)
		}
		if filter.Status != "" {
			wb.And("b.status = ?", string(filter.Status))
		}
		if filter.CustomerID != 0 {
			wb.And("b.customer_id = ?", filter.CustomerID)
		}
	}

	where, args := wb.Clause()
	fromClause := ` FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN travel_packages p ON p.id = b.travel_package_id`

	var total int64
	countQuery := "SELECT COUNT(*)" + fromClause + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s%s%s
		ORDER BY b.booking_date DESC
		LIMIT $%d OFFSET $%d
	`, bookingDetailsColumns, fromClause, where, wb.Next(), wb.Next()+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingWithDetails
	for rows.Next() {
		var booking entity.BookingWithDetails
		if err := scanBookingDetails(rows, &booking); err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, total, nil
}

func (r *bookingRepository) listBy(ctx context.Context, column string, id int64) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT id, customer_id, travel_package_id, booking_date, status,
		       number_of_people, total_price, notes, updated_at
		FROM bookings
		WHERE %s = $1
		ORDER BY booking_date DESC
	`, column)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.TravelPackageID,
			&booking.BookingDate,
			&booking.Status,
			&booking.NumberOfPeople,
			&booking.TotalPrice,
			&booking.Notes,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Booking, error) {
	return r.listBy(ctx, "customer_id", customerID)
}

func (r *bookingRepository) ListByPackage(ctx context.Context, packageID int64) ([]*entity.Booking, error) {
	return r.listBy(ctx, "travel_package_id", packageID)
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var old entity.Booking
	err = tx.QueryRowContext(ctx,
		`SELECT travel_package_id, status, number_of_people FROM bookings WHERE id = $1 FOR UPDATE`,
		booking.ID,
	).Scan(&old.TravelPackageID, &old.Status, &old.NumberOfPeople)
	if err == sql.ErrNoRows {
		return entity.ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock booking: %w", err)
	}

	// Перенос бронирования на другой тур не поддерживается:
	// корректировка мест двух туров сразу здесь не нужна
	if booking.TravelPackageID != old.TravelPackageID {
		return fmt.Errorf("booking cannot be moved to another package: %w", entity.ErrInvalidInput)
	}

	_, spots, err := lockPackageSpots(ctx, tx, booking.TravelPackageID)
	if err != nil {
		return err
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
	if delta > spots {
		return entity.ErrNotEnoughSpots
	}

	query := `
		UPDATE bookings
		SET status = $1, number_of_people = $2, total_price = $3, notes = $4, updated_at = $5
		WHERE id = $6
	`
	if _, err := tx.ExecContext(ctx, query,
		booking.Status,
		booking.NumberOfPeople,
		booking.TotalPrice,
		booking.Notes,
		time.Now(),
		booking.ID,
	); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if delta != 0 {
		if err := adjustPackageSpots(ctx, tx, booking.TravelPackageID, -delta); err != nil {
			return fmt.Errorf("failed to adjust package spots: %w", err)
		}
	}

	return tx.Commit()
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var packageID int64
	var status entity.BookingStatus
	var people int
	err = tx.QueryRowContext(ctx,
		`SELECT travel_package_id, status, number_of_people FROM bookings WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&packageID, &status, &people)
	if err == sql.ErrNoRows {
		return entity.ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock booking: %w", err)
	}

	if _, _, err := lockPackageSpots(ctx, tx, packageID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if status.HoldsSpots() {
		if err := adjustPackageSpots(ctx, tx, packageID, people); err != nil {
			return fmt.Errorf("failed to restore package spots: %w", err)
		}
	}

	return tx.Commit()
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	return count, err
}
