// Package catalog holds the read-only list of events shown in the gallery.
// A Catalog is built once at startup, either from the embedded default
// file or from a TOML file named in the configuration, and is then shared
// by every session without locking.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iliyamo/event-registration/internal/model"
)

//go:embed events.toml
var defaultEvents string

// ErrEventNotFound is returned when a name does not match any catalog event.
var ErrEventNotFound = errors.New("event not found")

// ErrEmptyCatalog is returned when a catalog file defines no events.
var ErrEmptyCatalog = errors.New("catalog has no events")

// Catalog is an ordered, immutable set of events keyed by name.
type Catalog struct {
	events []model.Event
	index  map[string]int
}

type file struct {
	Events []model.Event `toml:"events"`
}

// New builds a catalog from events in display order.  Names must be
// non-empty and unique.
func New(events []model.Event) (*Catalog, error) {
	if len(events) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		events: make([]model.Event, 0, len(events)),
		index:  make(map[string]int, len(events)),
	}
	for i, ev := range events {
		ev.Name = strings.TrimSpace(ev.Name)
		if ev.Name == "" {
			return nil, fmt.Errorf("event %d: name is required", i+1)
		}
		if _, dup := c.index[ev.Name]; dup {
			return nil, fmt.Errorf("event %q: duplicate name", ev.Name)
		}
		ev.Rules = append([]string(nil), ev.Rules...)
		c.index[ev.Name] = len(c.events)
		c.events = append(c.events, ev)
	}
	return c, nil
}

// Parse decodes a TOML catalog with one [[events]] table per event.
func Parse(r io.Reader) (*Catalog, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Events)
}

// Load reads a TOML catalog from path.
func Load(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Default returns the built-in catalog of four events.
func Default() *Catalog {
	c, err := Parse(strings.NewReader(defaultEvents))
	if err != nil {
		panic("catalog: embedded events.toml is invalid: " + err.Error())
	}
	return c
}

// Events returns a copy of all events in display order.
func (c *Catalog) Events() []model.Event {
	out := make([]model.Event, len(c.events))
	for i, ev := range c.events {
		ev.Rules = append([]string(nil), ev.Rules...)
		out[i] = ev
	}
	return out
}

// Lookup returns the event with the given name.
func (c *Catalog) Lookup(name string) (model.Event, error) {
	i, ok := c.index[name]
	if !ok {
		return model.Event{}, ErrEventNotFound
	}
	ev := c.events[i]
	ev.Rules = append([]string(nil), ev.Rules...)
	return ev, nil
}

// Has reports whether name is a catalog event.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns event names in display order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Name
	}
	return out
}

// First returns the first event in display order.
func (c *Catalog) First() model.Event {
	ev := c.events[0]
	ev.Rules = append([]string(nil), ev.Rules...)
	return ev
}

// Len returns the number of events.
func (c *Catalog) Len() int { return len(c.events) }
