package repository

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the users table if it does not exist. The unique
// index on email is the authoritative guard against duplicate signups;
// the service-level pre-check is advisory only.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id       VARCHAR(36)  NOT NULL,
			email    VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			name     VARCHAR(255) NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY users_email_uq (email)
		)
	`
	_, err := db.ExecContext(ctx, query)
	return err
}
