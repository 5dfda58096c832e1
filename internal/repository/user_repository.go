package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"accounts-be/internal/entities"
)

// ErrUserNotFound is returned when no row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert hits the unique constraint on
// email. Two concurrent registrations with the same email race past the
// FindByEmail check; the constraint is the only guard, so the violation must
// surface as the same conflict condition.
var ErrDuplicateEmail = errors.New("email already registered")

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(email, passwordHash, name string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	UpdateProfile(id string, name, bio *string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user into the database.
// The database assigns the ID and both timestamps; the returned user is the
// authoritative row including those fields.
func (r *userRepository) Create(email, passwordHash, name string) (*entities.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, name, bio, created_at, updated_at
	`

	user, err := scanUser(r.db.QueryRow(query, email, passwordHash, name))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email (case-sensitive exact match)
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT id, email, password_hash, name, bio, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.db.QueryRow(query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `
		SELECT id, email, password_hash, name, bio, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfile updates name and/or bio in place. Nil arguments keep the
// stored value (COALESCE), so a call with both nil is a no-op that still
// returns the current row. Only these two columns are touched.
func (r *userRepository) UpdateProfile(id string, name, bio *string) (*entities.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name),
		    bio = COALESCE($3, bio),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, email, password_hash, name, bio, created_at, updated_at
	`

	user, err := scanUser(r.db.QueryRow(query, id, name, bio))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
