// Package memory provides an in-memory implementation of the
// storage.Storage interface: an exactly-sized list of owned person records.
//
// Every mutation reallocates the slot array to the new logical size, so
// len(slots) == cap(slots) after any Append or RemoveAt. The list owns each
// record it holds; callers must not keep using a *types.Person after
// handing it to Append.
package memory

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/aanand-mishra/persons-list/internal/storage"
	"github.com/aanand-mishra/persons-list/internal/types"
)

// List is the concrete implementation of storage.Storage.
//
// A nil slot marks a pre-sized slot that has not been filled yet. It is a
// detectable empty state: every operation that would read it fails with
// storage.ErrEmptySlot instead of touching a missing record.
type List struct {
	slots     []*types.Person
	destroyed bool
}

// New returns a list with exactly size empty slots. Fill them with Set
// before printing or removing; Append works regardless.
func New(size int) (*List, error) {
	if size < 0 {
		return nil, fmt.Errorf("memory.New: size %d: %w", size, storage.ErrNegativeSize)
	}
	return &List{slots: make([]*types.Person, size)}, nil
}

// Len returns the number of slots, occupied or not.
func (l *List) Len() int {
	return len(l.slots)
}

// Set fills the empty slot at index with p and takes ownership of it. A
// record already held by this or any other List is rejected with
// storage.ErrAliased.
func (l *List) Set(index int, p *types.Person) error {
	if err := l.check(index); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if l.slots[index] != nil {
		return fmt.Errorf("Set: index %d: %w", index, storage.ErrSlotOccupied)
	}
	if err := l.accept(p); err != nil {
		return fmt.Errorf("Set: %w", err)
	}

	p.Claim(l)
	l.slots[index] = p
	return nil
}

// Get returns the record at index without transferring ownership.
func (l *List) Get(index int) (*types.Person, error) {
	if err := l.check(index); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	p := l.slots[index]
	if p == nil {
		return nil, fmt.Errorf("Get: index %d: %w", index, storage.ErrEmptySlot)
	}
	return p, nil
}

// All returns a copy of the slots in index order. It fails if any slot is
// still empty.
func (l *List) All() ([]*types.Person, error) {
	if l.destroyed {
		return nil, fmt.Errorf("All: %w", storage.ErrDestroyed)
	}
	if i := slices.Index(l.slots, nil); i >= 0 {
		return nil, fmt.Errorf("All: index %d: %w", i, storage.ErrEmptySlot)
	}

	out := make([]*types.Person, len(l.slots))
	copy(out, l.slots)
	return out, nil
}

// Append grows the list by exactly one slot and places p in it. The list
// takes ownership of p; a record already held by this or any other List is
// rejected with storage.ErrAliased.
func (l *List) Append(p *types.Person) error {
	if l.destroyed {
		return fmt.Errorf("Append: %w", storage.ErrDestroyed)
	}
	if err := l.accept(p); err != nil {
		return fmt.Errorf("Append: %w", err)
	}

	next := make([]*types.Person, len(l.slots)+1)
	copy(next, l.slots)
	next[len(l.slots)] = p
	p.Claim(l)
	l.slots = next
	return nil
}

// RemoveAt destroys the record at index, shifts every later record one
// position left and shrinks the slot array to the new exact size.
//
// On error the list is left exactly as it was.
func (l *List) RemoveAt(index int) error {
	if err := l.check(index); err != nil {
		return fmt.Errorf("RemoveAt: %w", err)
	}
	p := l.slots[index]
	if p == nil {
		return fmt.Errorf("RemoveAt: index %d: %w", index, storage.ErrEmptySlot)
	}

	p.Release()
	l.slots[index] = nil

	// Compaction keeps relative order; the stale tail entry is dropped by
	// the exact-size copy below.
	compacted := slices.Delete(l.slots, index, index+1)
	next := make([]*types.Person, len(compacted))
	copy(next, compacted)
	l.slots = next
	return nil
}

// Destroy releases every record, then the slot array. Calling it twice is
// reported rather than releasing anything a second time.
func (l *List) Destroy() error {
	if l.destroyed {
		return fmt.Errorf("Destroy: %w", storage.ErrDestroyed)
	}
	for _, p := range l.slots {
		// Unfilled pre-sized slots own nothing.
		if p != nil {
			p.Release()
		}
	}
	l.slots = nil
	l.destroyed = true
	return nil
}

func (l *List) check(index int) error {
	if l.destroyed {
		return storage.ErrDestroyed
	}
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("index %d, size %d: %w", index, len(l.slots), storage.ErrIndexOutOfRange)
	}
	return nil
}

// accept reports whether p may be taken into the list.
func (l *List) accept(p *types.Person) error {
	if p == nil {
		return storage.ErrNilPerson
	}
	if p.Owner() != nil {
		return storage.ErrAliased
	}
	return nil
}

var _ storage.Storage = (*List)(nil)
