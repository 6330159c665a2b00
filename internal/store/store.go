// Package store persists trained agent parameters between runs. Match
// history is deliberately not stored here.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultDriver = "sqlite3"
	defaultDSN    = "./jass.db"
)

// Service wraps the policy-weight table behind database/sql. The driver
// defaults to sqlite3; setting JASS_DB_DRIVER=pgx and JASS_DB_DSN switches
// to Postgres without code changes.
type Service struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens the store using the environment configuration (.env files are
// honored via godotenv autoload).
func New() (*Service, error) {
	driver := os.Getenv("JASS_DB_DRIVER")
	if driver == "" {
		driver = defaultDriver
	}
	dsn := os.Getenv("JASS_DB_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}
	return Open(driver, dsn)
}

// Open opens the store on an explicit driver and DSN.
func Open(driver, dsn string) (*Service, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open policy store: %w", err)
	}

	sqlStmt := `
	create table if not exists policy (
		name text not null primary key,
		updated_at text not null,
		weights text not null
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create policy table: %w", err)
	}

	return &Service{db: db}, nil
}

// Close closes the underlying database.
func (s *Service) Close() error {
	return s.db.Close()
}

// SaveWeights upserts the weight table for the named policy.
func (s *Service) SaveWeights(name string, weights []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := json.Marshal(weights)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`insert into policy (name, updated_at, weights) values ($1, $2, $3)
		 on conflict (name) do update set updated_at = $2, weights = $3`,
		name, time.Now().UTC().Format(time.RFC3339), string(blob),
	)
	return err
}

// LoadWeights returns the stored weights for the named policy, or
// (nil, nil) when none have been saved yet.
func (s *Service) LoadWeights(name string) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blob string
	err := s.db.QueryRow(`select weights from policy where name = $1`, name).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var weights []float64
	if err := json.Unmarshal([]byte(blob), &weights); err != nil {
		return nil, err
	}
	return weights, nil
}
