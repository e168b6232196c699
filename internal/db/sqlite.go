// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Alienware2000/intentionality/internal/block"
)

const dateFormat = "2006-01-02"

// SQLite implements block.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const insertQuery = `
	INSERT INTO blocks (title, kind, date, start_time, end_time, completed, color, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const selectColumns = `id, title, kind, date, start_time, end_time, completed, color, created_at`

// CreateBlock adds a new block and fills in its ID.
// Overlapping blocks are allowed; the timeline lays them out side by side.
func (s *SQLite) CreateBlock(ctx context.Context, b *block.Block) error {
	result, err := s.db.ExecContext(ctx, insertQuery,
		b.Title,
		b.Kind,
		b.Date.Format(dateFormat),
		b.Start,
		b.End,
		b.Completed,
		b.Color,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting block: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	b.ID = id

	return nil
}

// CreateBlocks adds multiple blocks in a single transaction.
// Used by the AI planner apply step so a failing proposal leaves no partial day.
func (s *SQLite) CreateBlocks(ctx context.Context, blocks []*block.Block) error {
	if len(blocks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range blocks {
		result, err := stmt.ExecContext(ctx,
			b.Title,
			b.Kind,
			b.Date.Format(dateFormat),
			b.Start,
			b.End,
			b.Completed,
			b.Color,
			b.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting block %q: %w", b.Title, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		b.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetBlock retrieves a block by ID. Returns nil if not found.
func (s *SQLite) GetBlock(ctx context.Context, id int64) (*block.Block, error) {
	query := `SELECT ` + selectColumns + ` FROM blocks WHERE id = ?`

	b, err := scanBlock(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying block: %w", err)
	}
	return b, nil
}

// ListBlocksByDate returns all blocks for a single day, ordered by start time.
func (s *SQLite) ListBlocksByDate(ctx context.Context, date time.Time) ([]*block.Block, error) {
	return s.ListBlocksByDateRange(ctx, date, date)
}

// ListBlocksByDateRange returns all blocks within the date range (inclusive),
// ordered by date then start time.
func (s *SQLite) ListBlocksByDateRange(ctx context.Context, start, end time.Time) ([]*block.Block, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM blocks
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time, end_time
	`

	rows, err := s.db.QueryContext(ctx, query, start.Format(dateFormat), end.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var blocks []*block.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return blocks, nil
}

// SetBlockCompleted updates the completion flag.
// Returns block.ErrNotCompletable for class blocks and block.ErrBlockNotFound
// for unknown IDs.
func (s *SQLite) SetBlockCompleted(ctx context.Context, id int64, completed bool) error {
	existing, err := s.GetBlock(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %d", block.ErrBlockNotFound, id)
	}
	if !existing.Completable() {
		return fmt.Errorf("%w: %q is a class", block.ErrNotCompletable, existing.Title)
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE blocks SET completed = ? WHERE id = ?`, completed, id); err != nil {
		return fmt.Errorf("updating completion: %w", err)
	}
	return nil
}

// UpdateBlockTimes updates a block's start and end clocks in place.
func (s *SQLite) UpdateBlockTimes(ctx context.Context, id int64, newStart, newEnd string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE blocks SET start_time = ?, end_time = ? WHERE id = ?`, newStart, newEnd, id)
	if err != nil {
		return fmt.Errorf("updating block times: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %d", block.ErrBlockNotFound, id)
	}
	return nil
}

// DeleteBlock removes a block.
func (s *SQLite) DeleteBlock(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM blocks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting block: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %d", block.ErrBlockNotFound, id)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlock(row scanner) (*block.Block, error) {
	var (
		b         block.Block
		date      string
		createdAt string
	)

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Kind,
		&date,
		&b.Start,
		&b.End,
		&b.Completed,
		&b.Color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &b, nil
}
