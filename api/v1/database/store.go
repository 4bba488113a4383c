package database

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNoFolder        = errors.New("folder does not exist")
	ErrDuplicateFolder = errors.New("folder name already exists")
	ErrDuplicateFile   = errors.New("file name already exists in folder")
	ErrDatabaseError   = errors.New("database error occurred")
)

// Postgres error codes for constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Store is the query layer. All access to the folders and files tables
// goes through its methods; callers never issue raw queries.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
