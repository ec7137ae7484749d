// Package render turns a person list into human- or machine-readable output.
//
// The text format is fixed, one line per record:
//
//	Person 1: Age: 25, Sex: m, Firstname: John, Lastname: Doe
//
// Rendering is read-only; nothing here mutates the list.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/aanand-mishra/persons-list/internal/storage"
	"github.com/aanand-mishra/persons-list/internal/types"
)

// Output format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Entry is the JSON shape of one rendered record.
type Entry struct {
	Index     int    `json:"index"`
	Age       int    `json:"age"`
	Sex       string `json:"sex"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Line formats the record at the zero-based index as one text line,
// without the trailing newline.
func Line(index int, p *types.Person) string {
	return fmt.Sprintf("Person %d: Age: %d, Sex: %c, Firstname: %s, Lastname: %s",
		index+1, p.Age, p.Sex, p.Firstname, p.Lastname)
}

// Lines returns a lazy sequence of text lines, one per record in index
// order. Nothing is read from src until the sequence is ranged over, and
// ranging again starts from the first record.
//
// The sequence ends early at the first slot that cannot be read (an empty
// pre-sized slot). Use Text to get that condition reported as an error.
func Lines(src storage.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < src.Len(); i++ {
			p, err := src.Get(i)
			if err != nil {
				return
			}
			if !yield(Line(i, p)) {
				return
			}
		}
	}
}

// Entries is the JSON counterpart of Lines.
func Entries(src storage.Reader) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := 0; i < src.Len(); i++ {
			p, err := src.Get(i)
			if err != nil {
				return
			}
			e := Entry{
				Index:     i + 1,
				Age:       p.Age,
				Sex:       string(rune(p.Sex)),
				Firstname: p.Firstname,
				Lastname:  p.Lastname,
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Text writes every record to w, one newline-terminated line each. If any
// slot is unreadable nothing is written and the error is returned.
func Text(w io.Writer, src storage.Reader) error {
	if err := readable(src); err != nil {
		return fmt.Errorf("render.Text: %w", err)
	}
	for line := range Lines(src) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("render.Text: write: %w", err)
		}
	}
	return nil
}

// JSON writes every record to w as one JSON object per line.
//
// json.NewEncoder streams directly into w; Encode appends the newline.
func JSON(w io.Writer, src storage.Reader) error {
	if err := readable(src); err != nil {
		return fmt.Errorf("render.JSON: %w", err)
	}
	enc := json.NewEncoder(w)
	for e := range Entries(src) {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("render.JSON: encode: %w", err)
		}
	}
	return nil
}

// Write dispatches to Text or JSON by format name.
func Write(w io.Writer, format string, src storage.Reader) error {
	switch format {
	case FormatJSON:
		return JSON(w, src)
	case FormatText, "":
		return Text(w, src)
	default:
		return fmt.Errorf("render.Write: unknown format %q", format)
	}
}

func readable(src storage.Reader) error {
	for i := 0; i < src.Len(); i++ {
		if _, err := src.Get(i); err != nil {
			return err
		}
	}
	return nil
}
