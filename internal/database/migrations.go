package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the two application tables if they do not exist yet.
// Both statements are idempotent so this is safe to run on every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS suggestions (
			suggestion_id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT 'Anonymous',
			activity VARCHAR(255) NOT NULL,
			reason TEXT,
			duration VARCHAR(100),
			energy_level VARCHAR(20) NOT NULL DEFAULT 'Any',
			time_of_day VARCHAR(20) NOT NULL DEFAULT 'Any',
			category VARCHAR(50) NOT NULL DEFAULT 'Relaxation',
			indoor BOOLEAN NOT NULL DEFAULT FALSE,
			` + "`condition`" + ` VARCHAR(50) NOT NULL DEFAULT 'any',
			status VARCHAR(20) NOT NULL DEFAULT 'inactive',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create suggestions table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS images (
			image_id VARCHAR(36) PRIMARY KEY,
			filename VARCHAR(255) NOT NULL,
			url VARCHAR(255) NOT NULL,
			category VARCHAR(20) NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			type VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create images table: %w", err)
	}

	return nil
}
