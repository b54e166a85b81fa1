package database

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jroosing/autodns/internal/zonegen"
)

// Setting keys in the settings table.
const (
	SettingZoneIPAddress         = "zone.ip_address"
	SettingZoneDomain            = "zone.domain"
	SettingOptionsCreateBackups  = "options.create_backups"
	SettingOptionsRestartService = "options.restart_service"
	SettingOptionsIncludeSamples = "options.include_samples"
)

// SetSetting sets a single value.
func (db *DB) SetSetting(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return setSettings(db.conn, map[string]string{key: value}, false)
}

// GetSetting retrieves a single value.
func (db *DB) GetSetting(key string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var value string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("setting %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

// GetZoneSettings returns the stored generator input. Options default to
// true when missing. ErrNotFound is returned when no zone has been stored.
func (db *DB) GetZoneSettings() (zonegen.Input, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT key, value FROM settings")
	if err != nil {
		return zonegen.Input{}, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return zonegen.Input{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return zonegen.Input{}, err
	}

	ip, hasIP := values[SettingZoneIPAddress]
	domain, hasDomain := values[SettingZoneDomain]
	if !hasIP && !hasDomain {
		return zonegen.Input{}, fmt.Errorf("zone settings: %w", ErrNotFound)
	}

	return zonegen.Input{
		IPAddress: ip,
		Domain:    domain,
		Options: zonegen.Options{
			CreateBackups:  parseBool(values[SettingOptionsCreateBackups], true),
			RestartService: parseBool(values[SettingOptionsRestartService], true),
			IncludeSamples: parseBool(values[SettingOptionsIncludeSamples], true),
		},
	}, nil
}

// SaveZoneSettings stores in, replacing previous values.
func (db *DB) SaveZoneSettings(in zonegen.Input) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return setSettings(db.conn, zoneSettingsMap(in), false)
}

// SeedZoneSettings stores in only for keys that are not set yet.
func (db *DB) SeedZoneSettings(in zonegen.Input) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return setSettings(db.conn, zoneSettingsMap(in), true)
}

func zoneSettingsMap(in zonegen.Input) map[string]string {
	return map[string]string{
		SettingZoneIPAddress:         in.IPAddress,
		SettingZoneDomain:            in.Domain,
		SettingOptionsCreateBackups:  strconv.FormatBool(in.Options.CreateBackups),
		SettingOptionsRestartService: strconv.FormatBool(in.Options.RestartService),
		SettingOptionsIncludeSamples: strconv.FormatBool(in.Options.IncludeSamples),
	}
}

func setSettings(conn *sql.DB, values map[string]string, onlyMissing bool) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`
	if onlyMissing {
		query = `INSERT OR IGNORE INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare settings insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
