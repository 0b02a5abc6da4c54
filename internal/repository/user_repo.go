package repository

import (
	"context"
	"errors"
	"fmt"

	"study_planner/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	FindByContact(ctx context.Context, contact string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	CountConflicts(ctx context.Context, username, email, phone string) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, email, phone, password_hash)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.Email, user.Phone, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByLogin retrieves a user whose username, email, or phone matches the
// given login value
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, email, phone, password_hash FROM users
            WHERE username = $1 OR email = $1 OR phone = $1`
	err := r.db.QueryRow(ctx, sql, login).Scan(&user.ID, &user.Username, &user.Email, &user.Phone, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, the service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}
	return user, nil
}

// FindByContact retrieves a user by email or phone
func (r *userRepository) FindByContact(ctx context.Context, contact string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, email, phone, password_hash FROM users
            WHERE email = $1 OR phone = $1`
	err := r.db.QueryRow(ctx, sql, contact).Scan(&user.ID, &user.Username, &user.Email, &user.Phone, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find user by contact: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, email, phone, password_hash FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&user.ID, &user.Username, &user.Email, &user.Phone, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// CountConflicts counts existing rows that collide with any of the three
// unique registration fields
func (r *userRepository) CountConflicts(ctx context.Context, username, email, phone string) (int64, error) {
	var count int64
	sql := `SELECT COUNT(*) FROM users WHERE username = $1 OR email = $2 OR phone = $3`
	err := r.db.QueryRow(ctx, sql, username, email, phone).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicting users: %w", err)
	}
	return count, nil
}

// UpdatePassword rewrites the stored password hash for a user
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	sql := `UPDATE users SET password_hash = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found for password update: %w", id, pgx.ErrNoRows)
	}
	return nil
}
