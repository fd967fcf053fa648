// Package profile handles SQLite persistence of the player profile
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// Profile is the durable player record. Zero values are the documented
// defaults for missing or corrupt data
type Profile struct {
	BestScore     int
	BestCombo     int
	TotalHits     int
	TotalMisses   int
	MatchesPlayed int
	Coins         int
}

// CoinDivisor converts match score to earned coins
const CoinDivisor = 10

// Store wraps SQLite access for the player profile
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			best_score INTEGER NOT NULL DEFAULT 0,
			best_combo INTEGER NOT NULL DEFAULT 0,
			total_hits INTEGER NOT NULL DEFAULT 0,
			total_misses INTEGER NOT NULL DEFAULT 0,
			matches_played INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the profile. A missing row or unreadable fields fall back
// field-by-field to defaults; startup never aborts on profile data
func (s *Store) Load(ctx context.Context) Profile {
	row := s.db.QueryRowContext(ctx,
		`SELECT best_score, best_combo, total_hits, total_misses, matches_played, coins
		 FROM profile WHERE id = 1`)

	var bestScore, bestCombo, hits, misses, matches, coins sql.NullInt64
	err := row.Scan(&bestScore, &bestCombo, &hits, &misses, &matches, &coins)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		// Corrupt row: defaults
		return Profile{}
	}

	intOr := func(v sql.NullInt64) int {
		if !v.Valid || v.Int64 < 0 {
			return 0
		}
		return int(v.Int64)
	}
	return Profile{
		BestScore:     intOr(bestScore),
		BestCombo:     intOr(bestCombo),
		TotalHits:     intOr(hits),
		TotalMisses:   intOr(misses),
		MatchesPlayed: intOr(matches),
		Coins:         intOr(coins),
	}
}

// RecordMatch folds a finished match into the profile
func (s *Store) RecordMatch(ctx context.Context, score, bestCombo, hits, misses int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile (id, best_score, best_combo, total_hits, total_misses, matches_played, coins)
		 VALUES (1, ?, ?, ?, ?, 1, ?)
		 ON CONFLICT(id) DO UPDATE SET
			best_score = MAX(best_score, excluded.best_score),
			best_combo = MAX(best_combo, excluded.best_combo),
			total_hits = total_hits + excluded.total_hits,
			total_misses = total_misses + excluded.total_misses,
			matches_played = matches_played + 1,
			coins = coins + excluded.coins`,
		score, bestCombo, hits, misses, score/CoinDivisor)
	if err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}
	return nil
}
