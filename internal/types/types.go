// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: storage,
// rendering and the driver can all import types without depending on each
// other.
package types

import "strings"

// Person is a single entry in a person list.
//
// Struct tags control how a record appears when the list is rendered as
// JSON (see internal/utils/render). Sex is kept as a single byte, so the
// JSON encoder never sees it directly; the renderer converts it to a
// one-character string.
type Person struct {
	Age       int    `json:"age"`
	Sex       byte   `json:"-"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`

	owner any
}

// NewPerson allocates a Person and copies both names into storage owned by
// the new record.
//
// strings.Clone guarantees the record never shares a backing array with a
// caller's buffer (for example a substring of a larger input line), so the
// list that later takes ownership of the record owns its names too.
func NewPerson(age int, sex byte, firstname, lastname string) *Person {
	return &Person{
		Age:       age,
		Sex:       sex,
		Firstname: strings.Clone(firstname),
		Lastname:  strings.Clone(lastname),
	}
}

// Owner returns the container currently holding p, or nil.
func (p *Person) Owner() any {
	return p.owner
}

// Claim records owner as the container holding p. Containers check Owner
// first; a record has at most one owner at a time.
func (p *Person) Claim(owner any) {
	p.owner = owner
}

// Release drops the record's names, zeroes its fields and clears its
// owner. It is called by the owning list exactly once, when the record is
// removed or the list is destroyed.
func (p *Person) Release() {
	*p = Person{}
}
