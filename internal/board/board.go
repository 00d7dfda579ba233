package board

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anshpatel080/kanban/internal/model"
)

// Store owns the canonical board state: the ordered column list and the
// item list. All mutations go through its methods; the rendering layer only
// ever observes copies. Mutations are serialized by an internal mutex so
// the store stays consistent even if commands run off the UI goroutine.
type Store struct {
	mu      sync.RWMutex
	columns []model.Column
	items   []model.Item
	rng     *rand.Rand
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used to pick accents for new columns.
// Tests inject a seeded source to make accent selection deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithIDGenerator overrides the column ID allocator. The generator must
// return values that never collide with existing column IDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a Store seeded with the given columns and items, normally
// the output of ingest.Normalize. The slices are copied; callers keep no
// aliasing handle into board state.
func New(columns []model.Column, items []model.Item, opts ...Option) *Store {
	s := &Store{
		columns: append([]model.Column(nil), columns...),
		items:   append([]model.Item(nil), items...),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Columns returns the columns in board order (left to right).
func (s *Store) Columns() []model.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Column(nil), s.columns...)
}

// Items returns all items in their original ingestion order.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.items...)
}

// Column returns the column with the given ID.
func (s *Store) Column(id string) (model.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.columnIndex(id); i >= 0 {
		return s.columns[i], true
	}
	return model.Column{}, false
}

// Item returns the item with the given ID.
func (s *Store) Item(id string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.itemIndex(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// ColumnCount returns the number of columns on the board.
func (s *Store) ColumnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.columns)
}

// ItemCount returns the number of items on the board.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ItemsIn returns the items currently assigned to the given column.
// Ordering is stable: items keep their original global ingestion order, so
// reassigning an item never reorders the items already in a column.
func (s *Store) ItemsIn(columnID string) []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Item
	for _, it := range s.items {
		if it.ColumnID == columnID {
			out = append(out, it)
		}
	}
	return out
}

// Reassign moves one item to a new column. The item's ColumnID and its
// denormalized Column snapshot are updated together. If either the item or
// the target column does not exist the board is left untouched; an invalid
// drop target must never leave an item in an inconsistent state, and the
// interaction layer is expected to prevent such drops in the first place.
func (s *Store) Reassign(itemID, targetColumnID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemIdx := s.itemIndex(itemID)
	colIdx := s.columnIndex(targetColumnID)
	if itemIdx < 0 || colIdx < 0 {
		return
	}

	s.items[itemIdx].ColumnID = s.columns[colIdx].ID
	s.items[itemIdx].Column = s.columns[colIdx]
}

// AddColumn appends a new column with the given display name to the end of
// the board. The name is trimmed; an empty or all-whitespace name is
// rejected with ErrEmptyName. The column gets a freshly allocated unique ID
// and a random accent from the palette. The new ID is returned so callers
// can focus the column.
func (s *Store) AddColumn(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > 50 {
		return "", ErrNameTooLong
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := model.Column{
		ID:   s.newID(),
		Name: name,
	}
	Palette[s.rng.Intn(len(Palette))].apply(&col)

	s.columns = append(s.columns, col)
	return col.ID, nil
}

// RemoveColumn deletes a column from the board order. It fails with
// ErrColumnNotFound when no such column exists and with ErrColumnNotEmpty
// while any item still references the column; deletion must never orphan
// an item. On success no item references are touched (none can exist).
func (s *Store) RemoveColumn(columnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.columnIndex(columnID)
	if idx < 0 {
		return ErrColumnNotFound
	}

	for _, it := range s.items {
		if it.ColumnID == columnID {
			return ErrColumnNotEmpty
		}
	}

	s.columns = append(s.columns[:idx], s.columns[idx+1:]...)
	return nil
}

// columnIndex returns the index of the column with the given ID, or -1.
// Callers must hold the mutex.
func (s *Store) columnIndex(id string) int {
	for i, c := range s.columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// itemIndex returns the index of the item with the given ID, or -1.
// Callers must hold the mutex.
func (s *Store) itemIndex(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
