package block

import (
	"context"
	"time"
)

// Repository defines the storage interface for blocks.
type Repository interface {
	// CreateBlock adds a new block and fills in its ID.
	CreateBlock(ctx context.Context, b *Block) error

	// CreateBlocks adds multiple blocks atomically.
	CreateBlocks(ctx context.Context, blocks []*Block) error

	// GetBlock retrieves a block by ID. Returns nil if not found.
	GetBlock(ctx context.Context, id int64) (*Block, error)

	// ListBlocksByDate returns all blocks for a single day,
	// ordered by start time.
	ListBlocksByDate(ctx context.Context, date time.Time) ([]*Block, error)

	// ListBlocksByDateRange returns all blocks within the date range
	// (inclusive), ordered by date then start time.
	ListBlocksByDateRange(ctx context.Context, start, end time.Time) ([]*Block, error)

	// SetBlockCompleted updates the completion flag.
	// Returns ErrNotCompletable for class blocks.
	SetBlockCompleted(ctx context.Context, id int64, completed bool) error

	// UpdateBlockTimes updates a block's start and end clocks in place.
	UpdateBlockTimes(ctx context.Context, id int64, newStart, newEnd string) error

	// DeleteBlock removes a block.
	DeleteBlock(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
