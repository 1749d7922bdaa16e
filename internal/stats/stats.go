// Package stats holds the catalog's hot counters.
package stats

import (
	"sync/atomic"
	"unsafe"
)

// CacheLineSize is a reasonable default for most modern CPUs.
const CacheLineSize = 64

// PaddedCounter is an atomic uint64 padded to exactly one cache line so
// that readers bumping Hits do not contend with the refresher bumping
// Fetches.
type PaddedCounter struct {
	atomic.Uint64
	_ [CacheLineSize - 8]byte
}

var _ [CacheLineSize - int(unsafe.Sizeof(PaddedCounter{}))]byte

// Counters tracks cache traffic. The zero value is ready to use.
type Counters struct {
	Hits        PaddedCounter
	Misses      PaddedCounter
	Fetches     PaddedCounter
	FetchErrors PaddedCounter
	Coalesced   PaddedCounter
	Invalidated PaddedCounter
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	Fetches     uint64  `json:"fetches"`
	FetchErrors uint64  `json:"fetch_errors"`
	Coalesced   uint64  `json:"coalesced"`
	Invalidated uint64  `json:"invalidated"`
	TotalGets   uint64  `json:"total_gets"`
	HitRate     float64 `json:"hit_rate"`
}

// Snapshot loads every counter. HitRate is a percentage of Hits over
// Hits+Misses, 0 when nothing was read yet.
func (c *Counters) Snapshot() Snapshot {
	hits := c.Hits.Load()
	misses := c.Misses.Load()
	total := hits + misses

	var rate float64
	if total > 0 {
		rate = float64(hits) / float64(total) * 100
	}
	return Snapshot{
		Hits:        hits,
		Misses:      misses,
		Fetches:     c.Fetches.Load(),
		FetchErrors: c.FetchErrors.Load(),
		Coalesced:   c.Coalesced.Load(),
		Invalidated: c.Invalidated.Load(),
		TotalGets:   total,
		HitRate:     rate,
	}
}

// Reset zeroes every counter.
func (c *Counters) Reset() {
	c.Hits.Store(0)
	c.Misses.Store(0)
	c.Fetches.Store(0)
	c.FetchErrors.Store(0)
	c.Coalesced.Store(0)
	c.Invalidated.Store(0)
}
