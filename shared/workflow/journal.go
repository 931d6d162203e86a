package workflow

import (
	"context"
	"encoding/json"
	"sync"
)

// Journal is the step log backing a Runtime. Each completed step's result is
// recorded under (execution id, step name); a recorded step is considered
// durably applied and is never re-executed.
type Journal interface {
	Lookup(ctx context.Context, executionID, step string) (json.RawMessage, bool, error)
	// Record persists the step result and returns the durably recorded
	// value. When another writer already recorded the step, the first write
	// wins and its result is returned, so racing executors of the same
	// execution converge on one result.
	Record(ctx context.Context, executionID, step string, result json.RawMessage) (json.RawMessage, error)
}

// MemoryJournal is an in-memory Journal for tests and single-process
// deployments. It provides memoization within a process lifetime but no
// crash durability.
type MemoryJournal struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemoryJournal creates an empty in-memory journal
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{entries: make(map[string]json.RawMessage)}
}

func (j *MemoryJournal) Lookup(_ context.Context, executionID, step string) (json.RawMessage, bool, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	result, ok := j.entries[executionID+"/"+step]
	return result, ok, nil
}

func (j *MemoryJournal) Record(_ context.Context, executionID, step string, result json.RawMessage) (json.RawMessage, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if existing, ok := j.entries[executionID+"/"+step]; ok {
		return existing, nil
	}
	j.entries[executionID+"/"+step] = result
	return result, nil
}

// Len returns the number of recorded steps
func (j *MemoryJournal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}
