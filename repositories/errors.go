package repositories

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyAssigned is returned when an appointment already holds the
	// room or prescription being assigned.
	ErrAlreadyAssigned = errors.New("appointment already has an assignment")
)

type ConstraintKind string

const (
	KindTrigger    ConstraintKind = "trigger"
	KindDuplicate  ConstraintKind = "duplicate"
	KindForeignKey ConstraintKind = "foreign_key"
	KindCheck      ConstraintKind = "check"
)

// ConstraintError is a write rejected by the database schema. Message is the
// human-readable text reported by the server, e.g. a trigger's message.
type ConstraintError struct {
	Kind    ConstraintKind
	Code    string
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s violation (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// MySQL server error numbers.
const (
	mysqlSignalException = 1644
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
	mysqlCheckViolated   = 3819
)

// translateError converts driver errors into *ConstraintError and leaves
// everything else untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		kind, ok := mysqlKind(myErr.Number)
		if !ok {
			return err
		}
		return &ConstraintError{Kind: kind, Code: fmt.Sprintf("%d", myErr.Number), Message: myErr.Message, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		kind, ok := postgresKind(pgErr.Code)
		if !ok {
			return err
		}
		return &ConstraintError{Kind: kind, Code: pgErr.Code, Message: pgErr.Message, Err: err}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Kind: KindDuplicate, Code: "duplicate", Message: "a record with this key already exists", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Kind: KindForeignKey, Code: "foreign_key", Message: "the record is referenced by or references missing data", Err: err}
	}
	return err
}

func mysqlKind(number uint16) (ConstraintKind, bool) {
	switch number {
	case mysqlSignalException:
		return KindTrigger, true
	case mysqlDuplicateEntry:
		return KindDuplicate, true
	case mysqlRowIsReferenced, mysqlNoReferencedRow:
		return KindForeignKey, true
	case mysqlCheckViolated:
		return KindCheck, true
	}
	return "", false
}

func postgresKind(code string) (ConstraintKind, bool) {
	switch code {
	case "P0001":
		return KindTrigger, true
	case "23505":
		return KindDuplicate, true
	case "23503":
		return KindForeignKey, true
	case "23514":
		return KindCheck, true
	}
	return "", false
}

// UserMessage is the text shown to the user when a write fails.
func UserMessage(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return err.Error()
}

// IsConflict reports whether err was caused by the data rather than the server.
func IsConflict(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) || errors.Is(err, ErrAlreadyAssigned)
}
