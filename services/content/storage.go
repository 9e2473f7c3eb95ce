package content

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB abstracts the database operations used by the storage layer.
// Satisfied by *pgxpool.Pool in production and pgxmock in tests.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Storage defines the interface for landing-page content access.
type Storage interface {
	GetLandingPage(ctx context.Context, locale string) (*LandingPage, error)
}

// PgStorage implements Storage using PostgreSQL. The DB field is
// exported so tests can substitute pgxmock for the pool.
type PgStorage struct {
	DB DB
}

// NewInstance creates a PostgreSQL-backed Storage implementation.
func NewInstance(db *pgxpool.Pool) (Storage, error) {
	if db == nil {
		return nil, fmt.Errorf("content storage: db connection cannot be nil")
	}
	return &PgStorage{DB: db}, nil
}

// GetLandingPage hydrates one language of the site from four tables:
//   - page_heroes: the banner copy (one row per locale)
//   - service_offerings: the service cards
//   - sectors: the industries section
//   - site_stats: the animated counters
//
// Returns pgx.ErrNoRows when the locale has no hero row, which the
// handler maps to 404.
func (r *PgStorage) GetLandingPage(ctx context.Context, locale string) (*LandingPage, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	page := &LandingPage{
		Locale:   locale,
		Services: []Offering{},
		Sectors:  []Sector{},
		Stats:    []Stat{},
	}

	err := r.DB.QueryRow(timeoutCtx, `
        SELECT title, subtitle, cta_label
        FROM page_heroes
        WHERE locale = $1`,
		locale).Scan(&page.Hero.Title, &page.Hero.Subtitle, &page.Hero.CTALabel)
	if err != nil {
		return nil, err // pgx.ErrNoRows for an unknown locale
	}

	serviceRows, err := r.DB.Query(timeoutCtx, `
        SELECT icon, title, description
        FROM service_offerings
        WHERE locale = $1
        ORDER BY sort_order`,
		locale)
	if err != nil {
		return nil, err
	}
	defer serviceRows.Close()

	for serviceRows.Next() {
		var o Offering
		if err := serviceRows.Scan(&o.Icon, &o.Title, &o.Description); err != nil {
			return nil, err
		}
		page.Services = append(page.Services, o)
	}
	if err := serviceRows.Err(); err != nil {
		return nil, err
	}

	sectorRows, err := r.DB.Query(timeoutCtx, `
        SELECT icon, name
        FROM sectors
        WHERE locale = $1
        ORDER BY sort_order`,
		locale)
	if err != nil {
		return nil, err
	}
	defer sectorRows.Close()

	for sectorRows.Next() {
		var s Sector
		if err := sectorRows.Scan(&s.Icon, &s.Name); err != nil {
			return nil, err
		}
		page.Sectors = append(page.Sectors, s)
	}
	if err := sectorRows.Err(); err != nil {
		return nil, err
	}

	statRows, err := r.DB.Query(timeoutCtx, `
        SELECT value, suffix, label
        FROM site_stats
        WHERE locale = $1
        ORDER BY sort_order`,
		locale)
	if err != nil {
		return nil, err
	}
	defer statRows.Close()

	for statRows.Next() {
		var s Stat
		if err := statRows.Scan(&s.Value, &s.Suffix, &s.Label); err != nil {
			return nil, err
		}
		page.Stats = append(page.Stats, s)
	}
	if err := statRows.Err(); err != nil {
		return nil, err
	}

	return page, nil
}
