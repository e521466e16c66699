package game

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// MemoryTableStore keeps serialized snapshots in a map. Snapshots are
// stored as bytes so a fetched snapshot never aliases a saved one.
type MemoryTableStore struct {
	mu     sync.RWMutex
	tables map[string][]byte
}

func NewMemoryTableStore() *MemoryTableStore {
	return &MemoryTableStore{
		tables: make(map[string][]byte),
	}
}

func (m *MemoryTableStore) Fetch(ctx context.Context, tableID string) (*Snapshot, error) {
	m.mu.RLock()
	data, ok := m.tables[tableID]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrTableNotFound, "table %s", tableID)
	}

	snapshot := &Snapshot{}
	if err := jsoniter.Unmarshal(data, snapshot); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling snapshot for table %s", tableID)
	}
	return snapshot, nil
}

func (m *MemoryTableStore) Save(ctx context.Context, snapshot *Snapshot) error {
	data, err := jsoniter.Marshal(snapshot)
	if err != nil {
		return errors.Wrapf(err, "marshaling snapshot for table %s", snapshot.Game.TableID)
	}

	m.mu.Lock()
	m.tables[snapshot.Game.TableID] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryTableStore) Remove(ctx context.Context, tableID string) error {
	m.mu.Lock()
	delete(m.tables, tableID)
	m.mu.Unlock()
	return nil
}
