package palette

import (
	"errors"
	"fmt"

	"github.com/studworks/brixel/internal/chroma"
)

// ErrNotFound reports a failed palette lookup or an unmatched color.
var ErrNotFound = errors.New("palette: not found")

// Entry is one palette color with its vendor catalog identity.
type Entry struct {
	ID    int
	Name  string
	Color chroma.Color
}

// Palette is an immutable, ordered set of entries. Declaration order is
// significant: distance ties during quantization resolve to the earliest
// entry.
type Palette struct {
	entries []Entry
	byID    map[int]int
	byName  map[string]int
}

// New builds a Palette from entries, preserving their order. The set must
// be non-empty and ids and names must be unique.
func New(entries []Entry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, errors.New("palette: no entries")
	}

	p := &Palette{
		entries: make([]Entry, len(entries)),
		byID:    make(map[int]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(p.entries, entries)

	for i, e := range p.entries {
		if _, dup := p.byID[e.ID]; dup {
			return nil, fmt.Errorf("palette: duplicate id %d", e.ID)
		}
		if _, dup := p.byName[e.Name]; dup {
			return nil, fmt.Errorf("palette: duplicate name %q", e.Name)
		}
		p.byID[e.ID] = i
		p.byName[e.Name] = i
	}

	return p, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// At returns the entry at position i in declaration order.
func (p *Palette) At(i int) Entry {
	return p.entries[i]
}

// Entries returns the entries in declaration order. The slice is a copy.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// ByID looks up an entry by its catalog id.
func (p *Palette) ByID(id int) (Entry, error) {
	i, ok := p.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return p.entries[i], nil
}

// ByName looks up an entry by its display name.
func (p *Palette) ByName(name string) (Entry, error) {
	i, ok := p.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return p.entries[i], nil
}

// index returns the declaration position of a catalog id.
func (p *Palette) index(id int) (int, bool) {
	i, ok := p.byID[id]
	return i, ok
}
