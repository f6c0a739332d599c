// Package auth_repo provides PostgreSQL implementations for auth repositories.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/auth"
	"farina/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txManager *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{txManager: txManager}
}

func (r *UserRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	query := `
		INSERT INTO users (
			id, username, nome, password_hash, ruolo, attivo,
			created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.querier(ctx).Exec(ctx, query,
		user.ID, user.Username, user.Nome, user.PasswordHash,
		user.Ruolo, user.Attivo, user.CreatedAt, user.UpdatedAt, user.Version,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	query := `
		SELECT id, username, nome, password_hash, ruolo, attivo,
		       last_login_at, failed_login_attempts, locked_until,
		       created_at, updated_at, version
		FROM users
		WHERE id = $1
	`

	var user auth.User
	err := r.querier(ctx).QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.Nome, &user.PasswordHash,
		&user.Ruolo, &user.Attivo, &user.LastLoginAt,
		&user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.Version,
	)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// GetByUsername retrieves user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	query := `
		SELECT id, username, nome, password_hash, ruolo, attivo,
		       last_login_at, failed_login_attempts, locked_until,
		       created_at, updated_at, version
		FROM users
		WHERE username = $1
	`

	var user auth.User
	err := r.querier(ctx).QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Nome, &user.PasswordHash,
		&user.Ruolo, &user.Attivo, &user.LastLoginAt,
		&user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.Version,
	)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", username)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// Update updates user data.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	query := `
		UPDATE users SET
			nome = $2,
			password_hash = $3,
			ruolo = $4,
			attivo = $5,
			last_login_at = $6,
			failed_login_attempts = $7,
			locked_until = $8,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $1 AND version = $9
	`

	result, err := r.querier(ctx).Exec(ctx, query,
		user.ID, user.Nome, user.PasswordHash, user.Ruolo, user.Attivo,
		user.LastLoginAt, user.FailedLoginAttempts, user.LockedUntil,
		user.Version,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}

	user.Version++
	return nil
}

// List retrieves users with filtering.
func (r *UserRepo) List(ctx context.Context, filter auth.UserFilter) ([]auth.User, int, error) {
	query := `
		SELECT id, username, nome, password_hash, ruolo, attivo,
		       last_login_at, failed_login_attempts, locked_until,
		       created_at, updated_at, version
		FROM users
		WHERE TRUE
	`
	countQuery := `SELECT COUNT(*) FROM users WHERE TRUE`

	var args []interface{}
	argIdx := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (username ILIKE $%d OR nome ILIKE $%d)", argIdx, argIdx)
		countQuery += fmt.Sprintf(" AND (username ILIKE $%d OR nome ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.Attivo != nil {
		query += fmt.Sprintf(" AND attivo = $%d", argIdx)
		countQuery += fmt.Sprintf(" AND attivo = $%d", argIdx)
		args = append(args, *filter.Attivo)
		argIdx++
	}

	if filter.Ruolo != "" {
		query += fmt.Sprintf(" AND ruolo = $%d", argIdx)
		countQuery += fmt.Sprintf(" AND ruolo = $%d", argIdx)
		args = append(args, filter.Ruolo)
		argIdx++
	}

	q := r.querier(ctx)

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query += " ORDER BY username ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Nome, &user.PasswordHash,
			&user.Ruolo, &user.Attivo, &user.LastLoginAt,
			&user.FailedLoginAttempts, &user.LockedUntil,
			&user.CreatedAt, &user.UpdatedAt, &user.Version,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, total, nil
}

// Exists checks if username is taken.
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.querier(ctx).QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}

	return exists, nil
}

// Ensure interface compliance
var _ auth.UserRepository = (*UserRepo)(nil)
