// Package layout assigns résumé sections to two columns and swaps them in
// response to drag gestures.
//
// The engine never fails on a gesture: a drag that starts or lands outside
// the columns is ignored. The only error it reports is a malformed initial
// partition.
package layout

import (
	"errors"
	"fmt"
	"slices"

	"resumeview/internal/section"
)

// NumColumns is the number of columns an Engine manages.
const NumColumns = 2

var (
	// ErrDuplicateSection is returned when an ID occupies more than one slot.
	ErrDuplicateSection = errors.New("section appears more than once in layout")
	// ErrEmptySection is returned when a slot holds the zero ID.
	ErrEmptySection = errors.New("layout slot has no section id")
)

// Slot addresses one position in one column.
type Slot struct {
	Column int
	Index  int
}

func (s Slot) String() string {
	return fmt.Sprintf("%d:%d", s.Column, s.Index)
}

// Pending is an in-progress drag gesture. A zero ID means that side has not
// been recorded yet.
type Pending struct {
	Source section.ID
	Target section.ID
}

// Ready reports whether both ends of the gesture are recorded.
func (p Pending) Ready() bool {
	return p.Source != "" && p.Target != ""
}

// Engine owns the column state and the pending drag gesture for one résumé
// view. It is not safe for concurrent use.
type Engine struct {
	columns [NumColumns][]section.ID
	pending Pending
}

// DefaultColumns returns the initial partition.
func DefaultColumns() (a, b []section.ID) {
	a = []section.ID{section.Project, section.Education, section.Summary}
	b = []section.ID{section.WorkExp, section.Achievement, section.Other}
	return a, b
}

// New returns an engine initialised with DefaultColumns.
func New() *Engine {
	a, b := DefaultColumns()
	return &Engine{columns: [NumColumns][]section.ID{a, b}}
}

// NewWithColumns returns an engine initialised with copies of a and b.
// Every ID must appear at most once across both columns.
func NewWithColumns(a, b []section.ID) (*Engine, error) {
	e := &Engine{columns: [NumColumns][]section.ID{slices.Clone(a), slices.Clone(b)}}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the partition invariant: no empty slots and no ID in more
// than one slot.
func (e *Engine) Validate() error {
	seen := make(map[section.ID]Slot)
	for c, col := range e.columns {
		for i, id := range col {
			here := Slot{Column: c, Index: i}
			if id == "" {
				return fmt.Errorf("%w at %s", ErrEmptySection, here)
			}
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("%w: %s at %s and %s", ErrDuplicateSection, id, prev, here)
			}
			seen[id] = here
		}
	}
	return nil
}

// RecordDragOver records id as the target of the current gesture,
// replacing any earlier target.
func (e *Engine) RecordDragOver(id section.ID) {
	e.pending.Target = id
}

// RecordDragEnd records id as the source of the current gesture and
// evaluates it. The gesture is finished either way, so the pending request
// is cleared. Reports whether a swap was applied.
func (e *Engine) RecordDragEnd(id section.ID) bool {
	e.pending.Source = id
	p := e.pending
	e.pending = Pending{}
	if !p.Ready() {
		return false
	}
	return e.Swap(p.Source, p.Target)
}

// Swap exchanges the slots holding source and target. Every other slot is
// left where it is. If either ID is not laid out, nothing changes and Swap
// returns false.
func (e *Engine) Swap(source, target section.ID) bool {
	from, ok := e.Locate(source)
	if !ok {
		return false
	}
	to, ok := e.Locate(target)
	if !ok {
		return false
	}
	e.columns[from.Column][from.Index] = target
	e.columns[to.Column][to.Index] = source
	e.pending = Pending{}
	return true
}

// Pending returns the gesture recorded so far.
func (e *Engine) Pending() Pending {
	return e.pending
}

// Locate returns the slot holding id.
func (e *Engine) Locate(id section.ID) (Slot, bool) {
	if id == "" {
		return Slot{}, false
	}
	for c, col := range e.columns {
		if i := slices.Index(col, id); i >= 0 {
			return Slot{Column: c, Index: i}, true
		}
	}
	return Slot{}, false
}

// At returns the ID in slot s.
func (e *Engine) At(s Slot) (section.ID, bool) {
	if s.Column < 0 || s.Column >= NumColumns {
		return "", false
	}
	col := e.columns[s.Column]
	if s.Index < 0 || s.Index >= len(col) {
		return "", false
	}
	return col[s.Index], true
}

// Column returns a copy of column i, or nil if i is out of range.
func (e *Engine) Column(i int) []section.ID {
	if i < 0 || i >= NumColumns {
		return nil
	}
	return slices.Clone(e.columns[i])
}

// Columns returns copies of both columns.
func (e *Engine) Columns() (a, b []section.ID) {
	return e.Column(0), e.Column(1)
}

// Flatten returns every laid out ID, column by column.
func (e *Engine) Flatten() []section.ID {
	return slices.Concat(e.columns[:]...)
}

// Len returns the total number of slots.
func (e *Engine) Len() int {
	n := 0
	for _, col := range e.columns {
		n += len(col)
	}
	return n
}
