package source

import (
	"fmt"
	"sync"
)

// entry is one registered buffer.
type entry struct {
	origin Origin
	text   string
}

// SourceMap owns registered source text and hands out immutable views of
// it. A map is an explicit object: indices are only meaningful against
// the map that issued them, and nothing here is process-global.
//
// Insertion takes a write lock; everything else takes a read lock, so
// parses of already-registered buffers can proceed concurrently.
type SourceMap struct {
	mu       sync.RWMutex
	entries  []entry
	byOrigin map[Origin]Index
}

// NewMap creates an empty SourceMap.
func NewMap() *SourceMap {
	return &SourceMap{
		byOrigin: make(map[Origin]Index),
	}
}

// Insert registers text under origin and returns its index. If the
// origin is already registered the map is left unchanged and Insert
// returns the existing index together with a *DuplicateOriginError.
// The conflict is an ordinary result, not a corrupted state: callers
// decide whether it is fatal.
func (m *SourceMap) Insert(origin Origin, text string) (Index, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byOrigin[origin]; ok {
		return existing, &DuplicateOriginError{Origin: origin, Existing: existing}
	}

	idx := Index(len(m.entries))
	m.entries = append(m.entries, entry{origin: origin, text: text})
	m.byOrigin[origin] = idx
	return idx, nil
}

// Len reports how many buffers are registered.
func (m *SourceMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Lookup returns the index registered for origin, if any.
func (m *SourceMap) Lookup(origin Origin) (Index, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.byOrigin[origin]
	return idx, ok
}

// Origin returns the origin of the buffer at idx.
func (m *SourceMap) Origin(idx Index) (Origin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, err := m.entry(idx)
	if err != nil {
		return Origin{}, err
	}
	return e.origin, nil
}

// Input returns a read-only view of the buffer at idx, suitable for
// handing to the parser.
func (m *SourceMap) Input(idx Index) (Input, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, err := m.entry(idx)
	if err != nil {
		return Input{}, err
	}
	return Input{index: idx, origin: e.origin, text: e.text}, nil
}

// entry fetches the record at idx. Callers hold at least a read lock.
func (m *SourceMap) entry(idx Index) (entry, error) {
	if idx < 0 || int(idx) >= len(m.entries) {
		return entry{}, fmt.Errorf("source index %d is not registered", idx)
	}
	return m.entries[idx], nil
}

// Input is an immutable view of one registered buffer.
type Input struct {
	index  Index
	origin Origin
	text   string
}

// Index returns the buffer's registry index. Spans produced while
// parsing this input carry it.
func (in Input) Index() Index { return in.index }

// Origin returns the identity the buffer was registered under.
func (in Input) Origin() Origin { return in.origin }

// Text returns the registered text.
func (in Input) Text() string { return in.text }
