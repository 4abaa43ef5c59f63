package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/travelbooker/internal/entity"
	"github.com/lib/pq"
)

type destinationRepository struct {
	db *sql.DB
}

func NewDestinationRepository(db *sql.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	query := `
		INSERT INTO destinations (name, country, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		destination.Name,
		destination.Country,
		destination.Description,
		destination.ImageURL,
		time.Now(),
		time.Now(),
	).Scan(&destination.ID)

	if isUniqueViolation(err) {
		return fmt.Errorf("destination %q in %q: %w", destination.Name, destination.Country, entity.ErrInvalidInput)
	}
	return err
}

func (r *destinationRepository) GetByID(ctx context.Context, id int64) (*entity.Destination, error) {
	query := `
		SELECT id, name, country, description, image_url, created_at, updated_at
		FROM destinations
		WHERE id = $1
	`

	var destination entity.Destination
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&destination.ID,
		&destination.Name,
		&destination.Country,
		&destination.Description,
		&destination.ImageURL,
		&destination.CreatedAt,
		&destination.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrDestinationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) GetByNameAndCountry(ctx context.Context, name, country string) (*entity.Destination, error) {
	query := `
		SELECT id, name, country, description, image_url, created_at, updated_at
		FROM destinations
		WHERE name = $1 AND country = $2
	`

	var destination entity.Destination
	err := r.db.QueryRowContext(ctx, query, name, country).Scan(
		&destination.ID,
		&destination.Name,
		&destination.Country,
		&destination.Description,
		&destination.ImageURL,
		&destination.CreatedAt,
		&destination.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrDestinationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context, filter *DestinationFilter, limit, offset int) ([]*entity.Destination, int64, error) {
	wb := &whereBuilder{}

	if filter != nil && filter.Search != "" {
		pattern := likePattern(filter.Search)
		wb.And("(name ILIKE ? OR country ILIKE ? OR description ILIKE ?)", pattern, pattern, pattern)
	}
	if filter != nil && filter.Country != "" {
		wb.And("country ILIKE ?", likePattern(filter.Country))
	}

	where, args := wb.Clause()

	var total int64
	countQuery := "SELECT COUNT(*) FROM destinations" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count destinations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, country, description, image_url, created_at, updated_at
		FROM destinations%s
		ORDER BY country, name
		LIMIT $%d OFFSET $%d
	`, where, wb.Next(), wb.Next()+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*entity.Destination
	for rows.Next() {
		var destination entity.Destination
		err := rows.Scan(
			&destination.ID,
			&destination.Name,
			&destination.Country,
			&destination.Description,
			&destination.ImageURL,
			&destination.CreatedAt,
			&destination.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, &destination)
	}

	return destinations, total, nil
}

func (r *destinationRepository) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT country FROM destinations ORDER BY country`)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	var countries []string
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}

	return countries, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *entity.Destination) error {
	query := `
		UPDATE destinations
		SET name = $1, country = $2, description = $3, image_url = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		destination.Name,
		destination.Country,
		destination.Description,
		destination.ImageURL,
		time.Now(),
		destination.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update destination: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrDestinationNotFound
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id int64) error {
	// Туры направления и их бронирования удаляются каскадом внешних ключей
	result, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrDestinationNotFound
	}

	return nil
}

func (r *destinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&count)
	return count, err
}

// isUniqueViolation проверяет ошибку postgres на нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23503"
}
