package db

import (
	"database/sql"
)

// MigrateUp creates the schema. Every statement is idempotent, so it runs on each start.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS videos (
    id          VARCHAR(11) PRIMARY KEY,
    title       TEXT NOT NULL,
    posted_date TIMESTAMPTZ NOT NULL,
    upload_date TIMESTAMPTZ NOT NULL,
    tags        TEXT[] NOT NULL DEFAULT '{}',
    views       BIGINT NOT NULL CHECK (views >= 0)
)`); err != nil {
		return err
	}

	indexes := []string{
		// date search and date-bounded random sampling
		`CREATE INDEX IF NOT EXISTS idx_videos_upload_date ON videos(upload_date)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the schema created by MigrateUp.
// Use with caution: this deletes every stored video.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_videos_upload_date`,
		`DROP TABLE IF EXISTS videos`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
