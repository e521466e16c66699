package game

import (
	"context"

	"github.com/pkg/errors"
)

// ErrTableNotFound is returned by a TableStore when no snapshot exists
// for the table.
var ErrTableNotFound = errors.New("table not found")

// TableStore persists {game, players} snapshots between stage
// invocations. The driver must save the returned snapshot before the
// next Advance call is allowed.
type TableStore interface {
	Fetch(ctx context.Context, tableID string) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
	Remove(ctx context.Context, tableID string) error
}
