package seat

import (
	"math/bits"
	"runtime"
	"sync/atomic"
	"time"
)

// maxReserveRetries bounds the CAS loop in TryReserve so a call always
// terminates, even when the word is under pathological contention.
const maxReserveRetries = 100

// Bitmask is the lock-free occupancy state of a single screening. The zero
// value has every seat free. Bits only ever flip from 0 to 1: there is no
// release operation, so a reserved seat stays reserved for the lifetime of
// the value. All methods are safe for concurrent use without any lock.
type Bitmask struct {
	occupied atomic.Uint32
}

// TryReserve atomically flips every bit of mask from 0 to 1. It returns
// true when all requested seats were acquired by a single
// compare-and-swap, and false — leaving the word untouched — when at least
// one requested seat is already occupied or the retry cap is exhausted.
// There is no partial success. mask must not carry bits outside 0..19.
func (b *Bitmask) TryReserve(mask uint32) bool {
	for retry := 0; retry < maxReserveRetries; retry++ {
		current := b.occupied.Load()
		if current&mask != 0 {
			// At least one seat already taken; no retry helps here.
			return false
		}
		if b.occupied.CompareAndSwap(current, current|mask) {
			return true
		}
		// Lost the word to a concurrent writer. Yield, then sleep a
		// little longer on each attempt so a thundering herd on the
		// same screening spreads out.
		runtime.Gosched()
		time.Sleep(time.Duration(50*(retry+1)) * time.Nanosecond)
	}
	return false
}

// Available reports whether every seat in mask is currently free. The
// answer is a snapshot and may be stale by the time the caller acts on it.
func (b *Bitmask) Available(mask uint32) bool {
	return b.occupied.Load()&mask == 0
}

// AvailableSeats returns the identifiers of all free seats in ascending
// bit order, computed from a single load of the occupancy word.
func (b *Bitmask) AvailableSeats() []string {
	current := b.occupied.Load()
	out := make([]string, 0, MaxSeats)
	for bit := 0; bit < MaxSeats; bit++ {
		if current&(1<<uint(bit)) == 0 {
			out = append(out, FormatSeatID(bit))
		}
	}
	return out
}

// AvailableCount returns how many of the twenty seats are free.
func (b *Bitmask) AvailableCount() uint32 {
	current := b.occupied.Load()
	return MaxSeats - uint32(bits.OnesCount32(current&AllSeatsMask))
}

// OccupancyPercent returns the occupied share of the screening in 0..100.
func (b *Bitmask) OccupancyPercent() float64 {
	occupied := MaxSeats - b.AvailableCount()
	return float64(occupied) / float64(MaxSeats) * 100.0
}

// Occupied returns the raw occupancy word.
func (b *Bitmask) Occupied() uint32 {
	return b.occupied.Load()
}
