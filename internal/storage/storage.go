// Package storage defines the Storage interface: the contract that any
// person-list backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The driver and the renderer should not know which container they are
// talking to. By depending only on this interface:
//
//   - Rendering works on anything that can report its length and hand out
//     records by index.
//
//   - Tests can pass a fake that satisfies the interface, for example one
//     that deliberately holds an empty slot.
package storage

import (
	"errors"

	"github.com/aanand-mishra/persons-list/internal/types"
)

// Sentinel errors. Backends wrap these with context (fmt.Errorf + %w), so
// callers must compare with errors.Is rather than ==.
var (
	// ErrIndexOutOfRange is returned when an index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of bounds")

	// ErrEmptySlot is returned when a pre-sized slot is read or removed
	// before it was filled.
	ErrEmptySlot = errors.New("slot is empty")

	// ErrSlotOccupied is returned when Set targets a slot that already
	// holds a record.
	ErrSlotOccupied = errors.New("slot is already occupied")

	// ErrNilPerson is returned when a nil record is handed to the list.
	ErrNilPerson = errors.New("person is nil")

	// ErrAliased is returned when a record already owned by the list is
	// inserted a second time.
	ErrAliased = errors.New("person is already in the list")

	// ErrNegativeSize is returned by constructors given a negative size.
	ErrNegativeSize = errors.New("size must not be negative")

	// ErrDestroyed is returned by every operation on a destroyed list.
	ErrDestroyed = errors.New("list has been destroyed")
)

// Reader is the read-only half of the contract. It is all the renderer
// needs.
type Reader interface {
	// Len returns the number of slots, occupied or not.
	Len() int

	// Get returns the record at index. It fails with ErrIndexOutOfRange
	// or ErrEmptySlot.
	Get(index int) (*types.Person, error)
}

// Storage is the full person-list contract.
type Storage interface {
	Reader

	// Append transfers ownership of p to the list, placing it last.
	Append(p *types.Person) error

	// RemoveAt destroys the record at index and closes the gap, keeping
	// the relative order of the remaining records.
	RemoveAt(index int) error

	// All returns a copy of the slots in index order.
	All() ([]*types.Person, error)

	// Destroy releases every record and the list itself. Any later call
	// returns ErrDestroyed.
	Destroy() error
}
