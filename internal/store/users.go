package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amokewustl/belong-chivent/pkg/models"
)

// CreateUser inserts a new account.
func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := p.db.ExecContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves an account by ID.
func (p *Postgres) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return p.getUser(ctx, `WHERE id = $1`, id)
}

// GetUserByUsername retrieves an account by username.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return p.getUser(ctx, `WHERE username = $1`, username)
}

func (p *Postgres) getUser(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, role, created_at, last_login
		FROM users %s
	`, where)

	var user models.User
	var lastLogin sql.NullTime
	err := p.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return &user, nil
}

// ListUsers retrieves accounts, newest first.
func (p *Postgres) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at, last_login
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		var lastLogin sql.NullTime
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&lastLogin,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if lastLogin.Valid {
			user.LastLogin = &lastLogin.Time
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateLastLogin stamps the account's most recent login time.
func (p *Postgres) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
