package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amokewustl/belong-chivent/pkg/models"
)

const eventColumns = `id, title, description, image, price, price_value, location,
	start_date, start_time, end_time, url, has_price, has_description, has_image`

// CreateEvent inserts a curated event.
func (p *Postgres) CreateEvent(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO curated_events (
			id, title, description, image, price, price_value, location,
			start_date, start_time, end_time, url,
			has_price, has_description, has_image
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := p.db.ExecContext(
		ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Image,
		event.Price,
		event.PriceValue,
		event.Location,
		event.StartDate,
		event.StartTime,
		event.EndTime,
		event.URL,
		event.HasPrice,
		event.HasDescription,
		event.HasImage,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// GetEvent retrieves a curated event by ID.
func (p *Postgres) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM curated_events WHERE id = $1`, eventColumns)

	event, err := scanEvent(p.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select event: %w", err)
	}

	return event, nil
}

// ListEvents retrieves curated events, newest first.
func (p *Postgres) ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM curated_events
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, eventColumns)

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *event)
	}

	return events, rows.Err()
}

// UpdateEvent replaces a curated event's fields.
func (p *Postgres) UpdateEvent(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE curated_events SET
			title = $2, description = $3, image = $4, price = $5,
			price_value = $6, location = $7, start_date = $8, start_time = $9,
			end_time = $10, url = $11, has_price = $12, has_description = $13,
			has_image = $14, updated_at = NOW()
		WHERE id = $1
	`

	result, err := p.db.ExecContext(
		ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Image,
		event.Price,
		event.PriceValue,
		event.Location,
		event.StartDate,
		event.StartTime,
		event.EndTime,
		event.URL,
		event.HasPrice,
		event.HasDescription,
		event.HasImage,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteEvent removes a curated event by ID.
func (p *Postgres) DeleteEvent(ctx context.Context, id string) error {
	result, err := p.db.ExecContext(ctx, `DELETE FROM curated_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanEvent.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Image,
		&event.Price,
		&event.PriceValue,
		&event.Location,
		&event.StartDate,
		&event.StartTime,
		&event.EndTime,
		&event.URL,
		&event.HasPrice,
		&event.HasDescription,
		&event.HasImage,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
