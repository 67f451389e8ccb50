package palette

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/studworks/brixel/internal/chroma"
)

// Quantizer maps arbitrary colors onto a fixed palette and counts how often
// each match gets rendered.
//
// The expensive nearest-entry search runs once per distinct source color in
// BuildFilter; Match afterwards is a map lookup. All methods are safe for
// concurrent use, so renderer goroutines may call Match and MarkUsed while
// sharing one Quantizer.
type Quantizer struct {
	pal *Palette

	mu     sync.RWMutex
	filter map[chroma.Color]int // opaque source color -> palette position
	uses   map[int]int          // palette position -> rendered studs
}

// NewQuantizer creates a Quantizer over p with an empty filter.
func NewQuantizer(p *Palette) *Quantizer {
	return &Quantizer{
		pal:    p,
		filter: make(map[chroma.Color]int),
		uses:   make(map[int]int),
	}
}

// BuildFilter resolves every color in colors to its nearest palette entry
// by exhaustive scan. Colors are matched fully opaque; duplicates after the
// alpha strip are resolved once. Only a strictly smaller distance displaces
// the current best, so equidistant candidates keep the earliest palette
// entry. Every match target has its usage counter zero-initialized.
//
// Calling BuildFilter again extends the existing filter.
func (q *Quantizer) BuildFilter(colors []chroma.Color) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, c := range colors {
		key := c.Opaque()
		if _, done := q.filter[key]; done {
			continue
		}

		best := 0
		bestDist := math.Inf(1)
		for i := 0; i < q.pal.Len(); i++ {
			if d := key.Distance(q.pal.At(i).Color); d < bestDist {
				best = i
				bestDist = d
			}
		}

		q.filter[key] = best
		if _, seen := q.uses[best]; !seen {
			q.uses[best] = 0
		}
	}
}

// Match returns the palette entry the filter assigned to c, ignoring c's
// alpha. Colors that never went through BuildFilter report ErrNotFound.
func (q *Quantizer) Match(c chroma.Color) (Entry, error) {
	q.mu.RLock()
	i, ok := q.filter[c.Opaque()]
	q.mu.RUnlock()

	if !ok {
		return Entry{}, fmt.Errorf("%w: no match for %s", ErrNotFound, c.Opaque())
	}
	return q.pal.At(i), nil
}

// MarkUsed counts one rendered stud against the entry with the given
// catalog id. Ids outside the palette are ignored.
func (q *Quantizer) MarkUsed(id int) {
	i, ok := q.pal.index(id)
	if !ok {
		return
	}
	q.mu.Lock()
	q.uses[i]++
	q.mu.Unlock()
}

// FilterSize returns the number of distinct source colors resolved so far.
func (q *Quantizer) FilterSize() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.filter)
}

// Usage is a palette entry together with its rendered-stud count.
type Usage struct {
	Entry
	Count int
}

// Usage returns one row per palette entry the filter targeted, including
// zero counts, ordered by Count descending with ties in palette declaration
// order.
func (q *Quantizer) Usage() []Usage {
	q.mu.RLock()
	counts := make(map[int]int, len(q.uses))
	for i, n := range q.uses {
		counts[i] = n
	}
	q.mu.RUnlock()

	positions := make([]int, 0, len(counts))
	for i := range counts {
		positions = append(positions, i)
	}
	sort.Slice(positions, func(a, b int) bool {
		pa, pb := positions[a], positions[b]
		if counts[pa] != counts[pb] {
			return counts[pa] > counts[pb]
		}
		return pa < pb
	})

	out := make([]Usage, 0, len(positions))
	for _, i := range positions {
		out = append(out, Usage{Entry: q.pal.At(i), Count: counts[i]})
	}
	return out
}

// Mapping is one filter assignment from a source color to a palette entry.
type Mapping struct {
	From chroma.Color
	To   Entry
}

// Mappings returns the filter contents in no particular order.
func (q *Quantizer) Mappings() []Mapping {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]Mapping, 0, len(q.filter))
	for c, i := range q.filter {
		out = append(out, Mapping{From: c, To: q.pal.At(i)})
	}
	return out
}
