package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadsearch/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevLeads inserts test leads for development across two owners. Skips
// seeding when the table already has rows.
func (d *DB) SeedDevLeads(ctx context.Context) error {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count leads: %w", err)
	}
	if count > 0 {
		return nil
	}

	leads := []struct {
		ownerID                  int64
		fname, lname, phone      string
		email, company, crm, mkt string
	}{
		{1, "Alice", "Anderson", "2025550101", "alice@example.com", "Anderson Consulting", "CRM-1001", "MKT-51"},
		{1, "Bob", "Brown", "2025550102", "bob@example.com", "Brown & Sons", "CRM-1002", "MKT-52"},
		{1, "Carol", "Chen", "+442079460958", "carol@example.co.uk", "Chen Imports", "CRM-1003", "MKT-53"},
		{2, "Dave", "Diaz", "2025550104", "dave@example.com", "Diaz Freight", "CRM-2001", "MKT-61"},
		{2, "Erin", "Evans", "2025550105", "erin@example.com", "Evans Media", "CRM-2002", "MKT-62"},
	}

	query := `
		INSERT INTO leads (owner_id, fname, lname, phone_number, email, company_name, crm_id, mkt_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'new')
	`

	for _, l := range leads {
		if _, err := d.Pool.Exec(ctx, query, l.ownerID, l.fname, l.lname, l.phone, l.email, l.company, l.crm, l.mkt); err != nil {
			return fmt.Errorf("failed to seed lead %s %s: %w", l.fname, l.lname, err)
		}
	}

	return nil
}
