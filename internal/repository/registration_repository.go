package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/event-registration/internal/database"
	"github.com/iliyamo/event-registration/internal/model"
)

const mysqlSchema = `CREATE TABLE IF NOT EXISTS registrations (
	id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	full_name      VARCHAR(255) NOT NULL,
	email          VARCHAR(255) NOT NULL,
	contact_number VARCHAR(64)  NOT NULL,
	roll_number    VARCHAR(64)  NOT NULL,
	department     VARCHAR(255) NOT NULL,
	event_name     VARCHAR(255) NOT NULL,
	created_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const sqliteSchema = `CREATE TABLE IF NOT EXISTS registrations (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name      TEXT NOT NULL,
	email          TEXT NOT NULL,
	contact_number TEXT NOT NULL,
	roll_number    TEXT NOT NULL,
	department     TEXT NOT NULL,
	event_name     TEXT NOT NULL,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// RegistrationRepo appends registration rows to the registrations table.
type RegistrationRepo struct{ DB *sql.DB }

func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{DB: db} }

// EnsureSchema creates the registrations table if it does not exist.
func (r *RegistrationRepo) EnsureSchema(ctx context.Context, driver string) error {
	var ddl string
	switch driver {
	case database.MySQL:
		ddl = mysqlSchema
	case database.SQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create registrations table: %w", err)
	}
	return nil
}

// AppendRow inserts one registration row.  fields must be in the order
// full name, email, contact number, roll number, department, event.
func (r *RegistrationRepo) AppendRow(ctx context.Context, fields []string) error {
	if len(fields) != model.RowWidth {
		return fmt.Errorf("%w: got %d, want %d", ErrRowWidth, len(fields), model.RowWidth)
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO registrations (full_name, email, contact_number, roll_number, department, event_name) VALUES (?,?,?,?,?,?)",
		fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
	return err
}

// Count returns the number of stored registrations.
func (r *RegistrationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM registrations").Scan(&n)
	return n, err
}

// CountByEvent returns how many registrations name each event.
func (r *RegistrationRepo) CountByEvent(ctx context.Context) (map[string]int64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT event_name, COUNT(*) FROM registrations GROUP BY event_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			name string
			n    int64
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, rows.Err()
}
