package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"med-reminder/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			uuid, name, branch_name, branch_address, ailments, phone_number
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.UUID,
		u.Name,
		u.BranchName,
		u.BranchAddress,
		u.Ailments,
		u.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *UsersRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT uuid, name, branch_name, branch_address, ailments, phone_number
		FROM users
		WHERE name = $1
		LIMIT 1
	`, name)

	var u users.User
	if err := row.Scan(
		&u.UUID,
		&u.Name,
		&u.BranchName,
		&u.BranchAddress,
		&u.Ailments,
		&u.PhoneNumber,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uuid, name, branch_name, branch_address, ailments, phone_number
		FROM users
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(
			&u.UUID,
			&u.Name,
			&u.BranchName,
			&u.BranchAddress,
			&u.Ailments,
			&u.PhoneNumber,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}

	return out, rows.Err()
}
