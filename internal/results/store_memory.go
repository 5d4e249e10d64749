package results

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// stored pairs a result with its insertion sequence, which breaks ties
// between records sharing a timestamp.
type stored struct {
	GameResult
	seq int64
}

type memoryStore struct {
	mu      sync.RWMutex
	byUser  map[string][]stored
	seq     int64
	nowFunc func() time.Time
}

// NewInMemoryStore returns a process-local Store, used by tests and the
// offline CLI.
func NewInMemoryStore() Store {
	return &memoryStore{
		byUser:  map[string][]stored{},
		nowFunc: time.Now,
	}
}

func (m *memoryStore) Append(_ context.Context, r GameResult) (GameResult, error) {
	if err := Validate(r); err != nil {
		return GameResult{}, err
	}
	r = prepare(r, m.nowFunc)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.byUser[r.UserID] = append(m.byUser[r.UserID], stored{GameResult: r, seq: m.seq})
	return r, nil
}

func (m *memoryStore) History(_ context.Context, userID string) ([]GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src := m.byUser[userID]
	out := make([]GameResult, len(src))
	for i, st := range src {
		out[i] = st.GameResult
	}
	return out, nil
}

func (m *memoryStore) ListByGame(_ context.Context, userID, gameID string, limit int) ([]GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []stored
	for _, st := range m.byUser[userID] {
		if st.GameID == gameID {
			matched = append(matched, st)
		}
	}
	// newest first: CreatedAt, then insertion order
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.seq > b.seq
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]GameResult, len(matched))
	for i, st := range matched {
		out[i] = st.GameResult
	}
	return out, nil
}

func (m *memoryStore) Latest(ctx context.Context, userID, gameID string) (GameResult, error) {
	list, err := m.ListByGame(ctx, userID, gameID, 1)
	if err != nil {
		return GameResult{}, err
	}
	if len(list) == 0 {
		return GameResult{}, ErrNotFound
	}
	return list[0], nil
}

// prepare fills the server-assigned fields of a new record.
func prepare(r GameResult, now func() time.Time) GameResult {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Millisecond)
	if r.Meta == nil {
		r.Meta = map[string]any{}
	}
	return r
}
