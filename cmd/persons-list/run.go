package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/persons-list/internal/config"
	"github.com/aanand-mishra/persons-list/internal/logging"
	"github.com/aanand-mishra/persons-list/internal/storage"
	"github.com/aanand-mishra/persons-list/internal/storage/memory"
	"github.com/aanand-mishra/persons-list/internal/types"
	"github.com/aanand-mishra/persons-list/internal/utils/render"
)

// The run function is like main, except that it takes the operating system
// fundamentals as arguments and returns an error instead of exiting.
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, getenv)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded",
		slog.String("env", cfg.Env),
		slog.String("output_format", cfg.OutputFormat))

	// ── Build the initial list ────────────────────────────────────────────
	// The list is pre-sized, so every slot must be filled before it is
	// printed; an unfilled slot would surface as storage.ErrEmptySlot.
	list, err := memory.New(3)
	if err != nil {
		return err
	}
	initial := []*types.Person{
		types.NewPerson(25, 'm', "John", "Doe"),
		types.NewPerson(30, 'f', "Jane", "Smith"),
		types.NewPerson(40, 'm', "Michael", "Johnson"),
	}
	for i, p := range initial {
		if err := list.Set(i, p); err != nil {
			return err
		}
	}

	// The rest of the driver only needs the interface.
	var people storage.Storage = list

	if err := section(stdout, cfg.OutputFormat, "Before removing:\n", people); err != nil {
		return err
	}

	if err := people.RemoveAt(0); err != nil {
		return err
	}
	log.Info("person removed", slog.Int("index", 0), slog.Int("size", people.Len()))

	if err := section(stdout, cfg.OutputFormat, "\nAfter removing:\n", people); err != nil {
		return err
	}

	if err := people.Append(types.NewPerson(25, 'm', "John", "Doe")); err != nil {
		return err
	}
	log.Info("person appended", slog.Int("size", people.Len()))

	if err := section(stdout, cfg.OutputFormat, "After adding:\n", people); err != nil {
		return err
	}

	if err := people.Destroy(); err != nil {
		return err
	}
	log.Debug("list destroyed")
	return nil
}

// section prints a heading followed by the list. Headings are only part of
// the text format; JSON output stays one object per line.
func section(w io.Writer, format, heading string, src storage.Reader) error {
	if format != render.FormatJSON {
		if _, err := io.WriteString(w, heading); err != nil {
			return fmt.Errorf("write heading: %w", err)
		}
	}
	return render.Write(w, format, src)
}
