package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS blocks (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			title      TEXT NOT NULL,
			kind       TEXT NOT NULL CHECK(kind IN ('class', 'habit', 'task')),
			date       DATE NOT NULL,
			start_time TIME NOT NULL,
			end_time   TIME NOT NULL,
			completed  INTEGER NOT NULL DEFAULT 0,
			color      TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_date ON blocks(date);
		CREATE INDEX IF NOT EXISTS idx_blocks_kind ON blocks(kind);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating blocks table: %w", err)
	}

	return nil
}
