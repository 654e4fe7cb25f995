package qsearch

import (
	"sync"
	"time"
)

// Progress is one per-iteration event published to observers. It carries
// everything the external reporting collaborator needs; the core never
// prints anything itself.
type Progress struct {
	Iteration int
	BestScore float64
	BestSoFar Snapshot
	State     SearchState
	At        time.Time
}

/*
ProgressGroup fans per-iteration progress events out to subscribers.

Sends are non-blocking: a subscriber that falls behind loses events
rather than stalling the coordinating loop, since a stalled controller
would distort the very timing behavior the run is measuring. Dropped
events are counted so observers can tell telemetry was lossy.
*/
type ProgressGroup struct {
	mu sync.RWMutex

	subscribers map[string]chan Progress
	bufferSize  int
	sent        int64
	dropped     int64
	closed      bool
}

func NewProgressGroup(bufferSize int) *ProgressGroup {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &ProgressGroup{
		subscribers: make(map[string]chan Progress),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers an observer and returns its event channel. The
// channel is closed by Close, never by the subscriber.
func (pg *ProgressGroup) Subscribe(id string) chan Progress {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	ch := make(chan Progress, pg.bufferSize)
	pg.subscribers[id] = ch
	return ch
}

// Unsubscribe removes an observer and closes its channel.
func (pg *ProgressGroup) Unsubscribe(id string) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if ch, ok := pg.subscribers[id]; ok {
		close(ch)
		delete(pg.subscribers, id)
	}
}

// Send publishes one event to every subscriber without blocking.
func (pg *ProgressGroup) Send(p Progress) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.closed {
		return
	}
	for _, ch := range pg.subscribers {
		select {
		case ch <- p:
			pg.sent++
		default:
			pg.dropped++
		}
	}
}

// Dropped returns how many events were lost to slow subscribers.
func (pg *ProgressGroup) Dropped() int64 {
	pg.mu.RLock()
	defer pg.mu.RUnlock()
	return pg.dropped
}

// Close shuts every subscriber channel. Safe to call once the run ends.
func (pg *ProgressGroup) Close() {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.closed {
		return
	}
	for _, ch := range pg.subscribers {
		close(ch)
	}
	pg.subscribers = make(map[string]chan Progress)
	pg.closed = true
}
