package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/travelbooker/internal/entity"
)

type packageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) PackageRepository {
	return &packageRepository{db: db}
}

const packageWithDestinationColumns = `
	p.id, p.destination_id, p.name, p.price, p.start_date, p.end_date,
	p.duration_days, p.itinerary, p.available_spots, p.created_at, p.updated_at,
	d.name, d.country
`

func scanPackageWithDestination(rows interface {
	Scan(dest ...any) error
}, pkg *entity.PackageWithDestination) error {
	return rows.Scan(
		&pkg.ID,
		&pkg.DestinationID,
		&pkg.Name,
		&pkg.Price,
		&pkg.StartDate,
		&pkg.EndDate,
		&pkg.DurationDays,
		&pkg.Itinerary,
		&pkg.AvailableSpots,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
		&pkg.DestinationName,
		&pkg.DestinationCountry,
	)
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.TravelPackage) error {
	query := `
		INSERT INTO travel_packages
			(destination_id, name, price, start_date, end_date, duration_days, itinerary, available_spots, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		pkg.DestinationID,
		pkg.Name,
		pkg.Price,
		pkg.StartDate,
		pkg.EndDate,
		pkg.DurationDays,
		pkg.Itinerary,
		pkg.AvailableSpots,
		time.Now(),
		time.Now(),
	).Scan(&pkg.ID)

	if isForeignKeyViolation(err) {
		return entity.ErrDestinationNotFound
	}
	return err
}

func (r *packageRepository) GetByID(ctx context.Context, id int64) (*entity.PackageWithDestination, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM travel_packages p
		JOIN destinations d ON d.id = p.destination_id
		WHERE p.id = $1
	`, packageWithDestinationColumns)

	var pkg entity.PackageWithDestination
	err := scanPackageWithDestination(r.db.QueryRowContext(ctx, query, id), &pkg)

	if err == sql.ErrNoRows {
		return nil, entity.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *packageRepository) GetByDestinationAndName(ctx context.Context, destinationID int64, name string) (*entity.TravelPackage, error) {
	query := `
		SELECT id, destination_id, name, price, start_date, end_date,
		       duration_days, itinerary, available_spots, created_at, updated_at
		FROM travel_packages
		WHERE destination_id = $1 AND name = $2
	`

	var pkg entity.TravelPackage
	err := r.db.QueryRowContext(ctx, query, destinationID, name).Scan(
		&pkg.ID,
		&pkg.DestinationID,
		&pkg.Name,
		&pkg.Price,
		&pkg.StartDate,
		&pkg.EndDate,
		&pkg.DurationDays,
		&pkg.Itinerary,
		&pkg.AvailableSpots,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, filter *PackageFilter, limit, offset int) ([]*entity.PackageWithDestination, int64, error) {
	wb := &whereBuilder{}

	if filter != nil {
		if filter.Search != "" {
			pattern := likePattern(filter.Search)
			wb.And("(p.name ILIKE ? OR d.name ILIKE ? OR p.itinerary ILIKE ?)", pattern, pattern, pattern)
		}
		if filter.DestinationID != 0 {
			wb.And("p.destination_id = ?", filter.DestinationID)
		}
		if filter.MinPrice != nil {
			wb.And("p.price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			wb.And("p.price <= ?", *filter.MaxPrice)
		}
		if filter.AvailableOnly {
			wb.And("p.available_spots > ?", 0)
		}
	}

	where, args := wb.Clause()
	fromClause := ` FROM travel_packages p JOIN destinations d ON d.id = p.destination_id`

	var total int64
	countQuery := "SELECT COUNT(*)" + fromClause + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count packages: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s%s%s
		ORDER BY p.start_date, p.destination_id
		LIMIT $%d OFFSET $%d
	`, packageWithDestinationColumns, fromClause, where, wb.Next(), wb.Next()+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.PackageWithDestination
	for rows.Next() {
		var pkg entity.PackageWithDestination
		if err := scanPackageWithDestination(rows, &pkg); err != nil {
			return nil, 0, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, total, nil
}

func (r *packageRepository) ListByDestination(ctx context.Context, destinationID int64) ([]*entity.TravelPackage, error) {
	query := `
		SELECT id, destination_id, name, price, start_date, end_date,
		       duration_days, itinerary, available_spots, created_at, updated_at
		FROM travel_packages
		WHERE destination_id = $1
		ORDER BY start_date
	`

	rows, err := r.db.QueryContext(ctx, query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query destination packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.TravelPackage
	for rows.Next() {
		var pkg entity.TravelPackage
		err := rows.Scan(
			&pkg.ID,
			&pkg.DestinationID,
			&pkg.Name,
			&pkg.Price,
			&pkg.StartDate,
			&pkg.EndDate,
			&pkg.DurationDays,
			&pkg.Itinerary,
			&pkg.AvailableSpots,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *packageRepository) GetUpcomingAvailable(ctx context.Context, limit int) ([]*entity.PackageWithDestination, error) {
	if limit <= 0 {
		limit = 4
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM travel_packages p
		JOIN destinations d ON d.id = p.destination_id
		WHERE p.available_spots > 0
		ORDER BY p.start_date
		LIMIT $1
	`, packageWithDestinationColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.PackageWithDestination
	for rows.Next() {
		var pkg entity.PackageWithDestination
		if err := scanPackageWithDestination(rows, &pkg); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.TravelPackage) error {
	query := `
		UPDATE travel_packages
		SET destination_id = $1, name = $2, price = $3, start_date = $4, end_date = $5,
		    duration_days = $6, itinerary = $7, available_spots = $8, updated_at = $9
		WHERE id = $10
	`

	result, err := r.db.ExecContext(ctx, query,
		pkg.DestinationID,
		pkg.Name,
		pkg.Price,
		pkg.StartDate,
		pkg.EndDate,
		pkg.DurationDays,
		pkg.Itinerary,
		pkg.AvailableSpots,
		time.Now(),
		pkg.ID,
	)

	if isForeignKeyViolation(err) {
		return entity.ErrDestinationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrPackageNotFound
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id int64) error {
	// Бронирования тура удаляются каскадом внешнего ключа
	result, err := r.db.ExecContext(ctx, `DELETE FROM travel_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrPackageNotFound
	}

	return nil
}

func (r *packageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM travel_packages`).Scan(&count)
	return count, err
}
