package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/kojiauth/kojiauth-go/internal/apperr"
	"github.com/kojiauth/kojiauth-go/internal/model"
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and returns the stored record. A duplicate
// email yields apperr.UserAlreadyExists; any other driver fault is
// wrapped as apperr.DatabaseOperation so raw SQL errors never reach the
// caller.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `INSERT INTO users (id, email, password, name) VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Password, user.Name); err != nil {
		if isDuplicateEntryError(err) {
			return nil, apperr.UserAlreadyExists(user.Email)
		}
		return nil, apperr.DatabaseOperation("create user", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by email. A missing row is not an
// error: the result is (nil, nil) so callers can distinguish absence
// from a persistence fault.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, password, name FROM users WHERE email = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.DatabaseOperation("find user by email", err)
	}

	return user, nil
}

// FindByID retrieves a user by id. Unlike FindByEmail, absence is an
// error here: callers of FindByID always expect the row to exist.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, email, password, name FROM users WHERE id = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.UserNotFound(id)
		}
		return nil, apperr.DatabaseOperation("find user by id", err)
	}

	return user, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry
// error (code 1062).
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
