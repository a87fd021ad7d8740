package repository

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/kojiauth/kojiauth-go/internal/apperr"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(errors.New("Duplicate entry 'a@x.com' for key 'users_email_uq'")) {
		t.Fatal("plain error should not match without the driver error type")
	}
	if !isDuplicateEntryError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}) {
		t.Fatal("MySQL error 1062 should be a duplicate entry error")
	}
	if isDuplicateEntryError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found"}) {
		t.Fatal("MySQL error 1213 should not be a duplicate entry error")
	}
}

func TestDatabaseOperationWrapping(t *testing.T) {
	cause := &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}
	err := apperr.DatabaseOperation("create user", cause)

	if got := apperr.StatusOf(err); got != http.StatusInternalServerError {
		t.Errorf("StatusOf() = %d, want %d", got, http.StatusInternalServerError)
	}

	// Clients see only the operation name; the driver message stays
	// behind Unwrap for logs.
	if want := "Database operation failed: create user"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		t.Error("wrapped driver error should be reachable via errors.As")
	}
}
