package vessel

import (
	"sync"

	"github.com/qmertyy/seamon/spatial"
)

// Store owns the MMSI-to-record mapping and the current spatial index.
// The index is a snapshot of the record set at its build time; any write
// marks it stale and the next QueryBBox rebuilds it wholesale.
//
// Locking: Get takes the read lock. Upsert, Remove and EvictOlderThan
// take the write lock. QueryBBox also takes the write lock for its whole
// duration because it may rebuild the index mid-call; this serialises
// viewport queries with each other and with writes, which bounds query
// throughput under heavy ingestion but keeps the rebuild trivially safe.
type Store struct {
	mu      sync.RWMutex
	records map[uint32]*Record
	index   *spatial.Index
	stale   bool
}

// NewStore returns an empty store with no index built.
func NewStore() *Store {
	return &Store{records: map[uint32]*Record{}}
}

// Upsert creates the record on first sight of an MMSI and applies the
// update's field group. It cannot fail; malformed events are filtered
// before they reach the store.
func (s *Store) Upsert(u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[u.MMSI]
	if !ok {
		r = NewRecord(u.MMSI, u.Name)
		s.records[u.MMSI] = r
	}
	switch u.Kind {
	case KindPosition:
		r.ApplyPosition(u)
	case KindStatic:
		r.ApplyStatic(u)
	}
	s.stale = true
}

// Remove deletes the record if present and reports whether it did. The
// index is only marked stale when something was actually removed.
func (s *Store) Remove(mmsi uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[mmsi]; !ok {
		return false
	}
	delete(s.records, mmsi)
	s.stale = true
	return true
}

// Get returns a copy of the record for mmsi. It never consults the
// spatial index and therefore never triggers a rebuild.
func (s *Store) Get(mmsi uint32) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[mmsi]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// IndexedPoints returns the size of the current spatial index, zero when
// no index has been built.
func (s *Store) IndexedPoints() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Len()
}

// QueryBBox returns the projected state of every vessel with a known
// position inside box. If the index is stale or absent it is rebuilt
// first from all records with a non-sentinel position, clearing the
// staleness flag, so the results always reflect every write that
// completed before this call acquired the lock.
func (s *Store) QueryBBox(box spatial.Box) []State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale || s.index == nil {
		s.rebuildIndex()
	}
	ids := s.index.RangeQuery(box)
	out := make([]State, 0, len(ids))
	for _, id := range ids {
		// The record can only vanish between rebuilds, but ids from an
		// index built in an earlier call must not be trusted blindly.
		if r, ok := s.records[id]; ok {
			out = append(out, r.State())
		}
	}
	return out
}

func (s *Store) rebuildIndex() {
	points := make([]spatial.Point, 0, len(s.records))
	for _, r := range s.records {
		if r.HasPosition() {
			points = append(points, spatial.Point{MMSI: r.MMSI, Lat: r.Lat, Lng: r.Lng})
		}
	}
	if len(points) == 0 {
		s.index = nil
	} else {
		s.index = spatial.Build(points)
	}
	s.stale = false
}

// EvictOlderThan removes every record whose last update is strictly
// older than cutoff (Unix seconds) and returns the removed and remaining
// counts. Removals mark the index stale so the next viewport query
// rebuilds without the evicted vessels.
func (s *Store) EvictOlderThan(cutoff int64) (removed, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for mmsi, r := range s.records {
		if r.LastUpdate < cutoff {
			delete(s.records, mmsi)
			removed++
		}
	}
	if removed > 0 {
		s.stale = true
	}
	return removed, len(s.records)
}
