// Package store holds the in-memory collections the console mirrors from the
// backend. Each Slice is an independent state machine:
//
//	Idle -> Loading -> {Settled, Failed}
//
// re-entering Loading whenever a new operation begins. Every operation takes a
// ticket from Begin. Only the holder of the latest ticket moves the status. A
// stale fetch or failure is dropped, while a stale create, update or delete
// still lands in the collection. The lock is never held across network I/O.
package store

import (
	"slices"
	"sync"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
)

type Status int

const (
	Idle Status = iota
	Loading
	Settled
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Settled:
		return "settled"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Ticket identifies one dispatched operation on a slice.
type Ticket uint64

// State is a point-in-time copy of a slice.
type State[T models.Record] struct {
	Name    string `json:"name"`
	Items   []T    `json:"items"`
	Status  Status `json:"status"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type Slice[T models.Record] struct {
	mu        sync.Mutex
	name      string
	items     []T
	status    Status
	err       string
	issued    Ticket
	discarded uint64
	onDiscard func(name string)
}

type Option func(*options)

type options struct {
	onDiscard func(name string)
}

// WithDiscardHook is called, outside the lock, for every stale completion.
func WithDiscardHook(hook func(name string)) Option {
	return func(o *options) { o.onDiscard = hook }
}

func New[T models.Record](name string, initial []T, opts ...Option) *Slice[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	items := slices.Clone(initial)
	if items == nil {
		items = []T{}
	}

	return &Slice[T]{name: name, items: items, onDiscard: o.onDiscard}
}

func (s *Slice[T]) Name() string { return s.name }

// Begin enters Loading, clears the last error and issues a fresh ticket.
func (s *Slice[T]) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.status = Loading
	s.err = ""

	return s.issued
}

// Replace swaps the whole collection for a fetch result.
func (s *Slice[T]) Replace(t Ticket, items []T) bool {
	return s.complete(t, func() {
		s.items = slices.Clone(items)
		if s.items == nil {
			s.items = []T{}
		}
	})
}

// Merge keeps the entries for which protected reports true and appends every
// fetched entry whose ID is not already held by a protected entry.
func (s *Slice[T]) Merge(t Ticket, fetched []T, protected func(T) bool) bool {
	return s.complete(t, func() {
		merged := make([]T, 0, len(s.items)+len(fetched))
		kept := make(map[string]struct{})

		for _, item := range s.items {
			if protected(item) {
				merged = append(merged, item)
				kept[item.GetID()] = struct{}{}
			}
		}

		for _, item := range fetched {
			if _, ok := kept[item.GetID()]; !ok {
				merged = append(merged, item)
			}
		}

		s.items = merged
	})
}

// Append adds item, or replaces the entry already holding its ID when a
// fetch that finished first brought it in.
//
// Append, ReplaceByID and RemoveByID always change the collection. A stale
// ticket only loses the status update and reports false.
func (s *Slice[T]) Append(t Ticket, item T) bool {
	return s.mutate(t, func() {
		if i := s.indexOf(item.GetID()); i >= 0 {
			s.items[i] = item
			return
		}
		s.items = append(s.items, item)
	})
}

// ReplaceByID swaps the entry with item's ID. A missing ID leaves the
// collection untouched but still settles the slice.
func (s *Slice[T]) ReplaceByID(t Ticket, item T) bool {
	return s.mutate(t, func() {
		if i := s.indexOf(item.GetID()); i >= 0 {
			s.items[i] = item
		}
	})
}

func (s *Slice[T]) RemoveByID(t Ticket, id string) bool {
	return s.mutate(t, func() {
		s.items = slices.DeleteFunc(s.items, func(item T) bool {
			return item.GetID() == id
		})
	})
}

// Settle finishes an operation that did not touch the collection.
func (s *Slice[T]) Settle(t Ticket) bool {
	return s.complete(t, func() {})
}

// Fail records message and leaves the collection as it was.
func (s *Slice[T]) Fail(t Ticket, message string) bool {
	return s.finish(t, Failed, func() {
		s.err = message
	})
}

// Reject records a failure that happened before any ticket was issued, such
// as a draft refused locally. An operation in flight stays Loading.
func (s *Slice[T]) Reject(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = message
	if s.status != Loading {
		s.status = Failed
	}
}

func (s *Slice[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = ""
	if s.status == Failed {
		s.status = Settled
	}
}

func (s *Slice[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State[T]{
		Name:    s.name,
		Items:   slices.Clone(s.items),
		Status:  s.status,
		Loading: s.status == Loading,
		Error:   s.err,
	}
}

func (s *Slice[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Slice[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}

	var zero T
	return zero, false
}

func (s *Slice[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Discarded counts fetches and failures dropped because a newer operation
// had begun.
func (s *Slice[T]) Discarded() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.discarded
}

func (s *Slice[T]) complete(t Ticket, apply func()) bool {
	return s.finish(t, Settled, apply)
}

func (s *Slice[T]) finish(t Ticket, status Status, apply func()) bool {
	s.mu.Lock()
	if t != s.issued {
		s.discarded++
		s.mu.Unlock()
		s.notifyDiscard()
		return false
	}

	apply()
	s.status = status
	s.mu.Unlock()

	return true
}

func (s *Slice[T]) mutate(t Ticket, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply()
	if t != s.issued {
		return false
	}
	s.status = Settled

	return true
}

func (s *Slice[T]) notifyDiscard() {
	if s.onDiscard != nil {
		s.onDiscard(s.name)
	}
}

// indexOf must be called with mu held.
func (s *Slice[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool {
		return item.GetID() == id
	})
}
