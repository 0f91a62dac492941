// ABOUTME: In-process change notification bus for the storage engine.
// ABOUTME: Publishes table-level events after each successful write.
package store

import "sync"

// Op is the kind of write that produced an event.
type Op uint8

const (
	OpInsert Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Event describes a committed write: which table, what kind, which row.
type Event struct {
	Table string
	Op    Op
	ID    uint64
}

// Bus fans change events out to subscribers. Delivery is best-effort:
// a subscriber that falls behind loses events rather than blocking writers,
// matching the eventually-consistent contract of live queries.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*Subscription
	closed bool
}

func newBus() *Bus {
	return &Bus{subs: map[int]*Subscription{}}
}

// Subscription receives events on C for the tables it was created with.
type Subscription struct {
	C chan Event

	bus    *Bus
	id     int
	tables map[string]bool
	once   sync.Once
}

// Subscribe registers interest in writes to the given tables. With no
// tables, every event is delivered.
func (b *Bus) Subscribe(tables ...string) *Subscription {
	sub := &Subscription{
		C:      make(chan Event, 64),
		bus:    b,
		tables: map[string]bool{},
	}
	for _, t := range tables {
		sub.tables[t] = true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.C)
		return sub
	}
	sub.id = b.nextID
	b.nextID++
	b.subs[sub.id] = sub
	return sub
}

// Close unregisters the subscription and closes its channel.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		if !s.bus.closed {
			delete(s.bus.subs, s.id)
			close(s.C)
		}
		s.bus.mu.Unlock()
	})
}

func (s *Subscription) wants(table string) bool {
	return len(s.tables) == 0 || s.tables[table]
}

func (b *Bus) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, sub := range b.subs {
		if !sub.wants(ev.Table) {
			continue
		}
		select {
		case sub.C <- ev:
		default:
		}
	}
}

func (b *Bus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub.C)
	}
	b.subs = map[int]*Subscription{}
}
