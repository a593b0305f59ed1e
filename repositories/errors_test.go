package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    ConstraintKind
		message string
	}{
		{
			name:    "mysql trigger",
			err:     &mysql.MySQLError{Number: 1644, Message: "Doctor already has an appointment in this time slot"},
			kind:    KindTrigger,
			message: "Doctor already has an appointment in this time slot",
		},
		{
			name:    "mysql foreign key",
			err:     fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}),
			kind:    KindForeignKey,
			message: "Cannot delete or update a parent row",
		},
		{
			name:    "postgres trigger",
			err:     &pgconn.PgError{Code: "P0001", Message: "Doctor already has an appointment in this time slot"},
			kind:    KindTrigger,
			message: "Doctor already has an appointment in this time slot",
		},
		{
			name:    "postgres unique",
			err:     &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			kind:    KindDuplicate,
			message: "duplicate key value violates unique constraint",
		},
		{
			name:    "postgres check",
			err:     &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"},
			kind:    KindCheck,
			message: "new row violates check constraint",
		},
		{
			name:    "gorm duplicated key",
			err:     gorm.ErrDuplicatedKey,
			kind:    KindDuplicate,
			message: "a record with this key already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ce *ConstraintError
			if !errors.As(translateError(tt.err), &ce) {
				t.Fatalf("expected *ConstraintError, got %v", translateError(tt.err))
			}
			if ce.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, ce.Kind)
			}
			if ce.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, ce.Message)
			}
			if !errors.Is(ce, tt.err) && !errors.Is(tt.err, ce.Err) {
				t.Error("original error is not reachable")
			}
		})
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	if translateError(nil) != nil {
		t.Error("nil must stay nil")
	}
	plain := errors.New("connection refused")
	if got := translateError(plain); got != plain {
		t.Errorf("expected untouched error, got %v", got)
	}
	lock := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	if got := translateError(lock); got != error(lock) {
		t.Errorf("expected untouched mysql error, got %v", got)
	}
}

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("failed to create appointment: %w",
		translateError(&mysql.MySQLError{Number: 1644, Message: "Doctor already has an appointment in this time slot"}))
	if got := UserMessage(wrapped); got != "Doctor already has an appointment in this time slot" {
		t.Errorf("unexpected message %q", got)
	}
	if got := UserMessage(errors.New("boom")); got != "boom" {
		t.Errorf("unexpected message %q", got)
	}
	if !IsConflict(wrapped) || !IsConflict(fmt.Errorf("x: %w", ErrAlreadyAssigned)) {
		t.Error("expected conflicts to be recognised")
	}
	if IsConflict(errors.New("boom")) {
		t.Error("plain error is not a conflict")
	}
}
