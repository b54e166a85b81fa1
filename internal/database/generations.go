package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jroosing/autodns/internal/zonegen"
)

// Generation is one stored artifact set.
type Generation struct {
	ID             string    `json:"id"`
	Domain         string    `json:"domain"`
	IPAddress      string    `json:"ip_address"`
	ReverseZone    string    `json:"reverse_zone"`
	IncludeSamples bool      `json:"include_samples"`
	Applied        bool      `json:"applied"`
	ChecksPassed   *bool     `json:"checks_passed,omitempty"`
	ForwardText    string    `json:"forward_zone_text"`
	ReverseText    string    `json:"reverse_zone_text"`
	ConfSnippet    string    `json:"conf_snippet"`
	CreatedAt      time.Time `json:"created_at"`
}

// timeLayout has fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

const generationColumns = `id, domain, ip_address, reverse_zone, include_samples, applied,
	checks_passed, forward_zone_text, reverse_zone_text, conf_snippet, created_at`

// RecordGeneration stores art. checksPassed is nil when nothing was verified.
func (db *DB) RecordGeneration(art *zonegen.Artifacts, applied bool, checksPassed *bool) (*Generation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	g := &Generation{
		ID:             uuid.NewString(),
		Domain:         art.Input.Domain,
		IPAddress:      art.Input.IPAddress,
		ReverseZone:    art.ReverseZoneName(),
		IncludeSamples: art.Input.Options.IncludeSamples,
		Applied:        applied,
		ChecksPassed:   checksPassed,
		ForwardText:    art.ForwardZone,
		ReverseText:    art.ReverseZone,
		ConfSnippet:    art.ConfSnippet,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}

	var checks sql.NullBool
	if checksPassed != nil {
		checks = sql.NullBool{Bool: *checksPassed, Valid: true}
	}

	_, err := db.conn.Exec(`INSERT INTO generations (`+generationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Domain, g.IPAddress, g.ReverseZone, g.IncludeSamples, g.Applied,
		checks, g.ForwardText, g.ReverseText, g.ConfSnippet, g.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert generation: %w", err)
	}
	return g, nil
}

// ListGenerations returns up to limit generations, newest first.
func (db *DB) ListGenerations(limit int) ([]Generation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.Query(`SELECT `+generationColumns+` FROM generations
		ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generations: %w", err)
	}
	defer rows.Close()

	out := make([]Generation, 0)
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// CountGenerations returns the number of stored and applied generations.
func (db *DB) CountGenerations() (total, applied int, err error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	err = db.conn.QueryRow(`SELECT COUNT(*), COALESCE(SUM(applied), 0) FROM generations`).Scan(&total, &applied)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count generations: %w", err)
	}
	return total, applied, nil
}

// GetGeneration returns the generation with id or ErrNotFound.
func (db *DB) GetGeneration(id string) (*Generation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`SELECT `+generationColumns+` FROM generations WHERE id = ?`, id)
	g, err := scanGeneration(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("generation %s: %w", id, ErrNotFound)
	}
	return g, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(r rowScanner) (*Generation, error) {
	var (
		g       Generation
		checks  sql.NullBool
		created string
	)
	err := r.Scan(&g.ID, &g.Domain, &g.IPAddress, &g.ReverseZone, &g.IncludeSamples, &g.Applied,
		&checks, &g.ForwardText, &g.ReverseText, &g.ConfSnippet, &created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan generation: %w", err)
	}
	if checks.Valid {
		v := checks.Bool
		g.ChecksPassed = &v
	}
	g.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	return &g, nil
}
