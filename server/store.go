package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/zalepa/ourvoice/metrics"
)

// SnapshotStore keeps recently issued snapshots so that chart requests render
// the same figures the dashboard page was given. Entries expire after ttl.
type SnapshotStore struct {
	cache *cache.Cache
}

// NewSnapshotStore returns a store whose entries live for ttl.
func NewSnapshotStore(ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{cache: cache.New(ttl, 2*ttl)}
}

// Put stores s and returns its id.
func (st *SnapshotStore) Put(s metrics.Snapshot) string {
	id := uuid.NewString()
	st.cache.Set(id, s, cache.DefaultExpiration)
	return id
}

// Get returns the snapshot issued under id, if it has not expired.
func (st *SnapshotStore) Get(id string) (metrics.Snapshot, bool) {
	v, ok := st.cache.Get(id)
	if !ok {
		return metrics.Snapshot{}, false
	}
	s, ok := v.(metrics.Snapshot)
	return s, ok
}

// Len is the number of unexpired snapshots.
func (st *SnapshotStore) Len() int {
	return st.cache.ItemCount()
}
