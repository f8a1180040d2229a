package ui

import "slices"

// Focus IDs for the two résumé columns, in tab order.
const (
	FocusLeft  = "left"
	FocusRight = "right"
)

// FocusManager tracks and rotates focus across columns.
type FocusManager struct {
	Current  string   // ID of the focused column
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewColumnFocus returns a FocusManager over the left and right columns,
// starting on the left.
func NewColumnFocus() *FocusManager {
	return &FocusManager{
		Current: FocusLeft,
		Order:   []string{FocusLeft, FocusRight},
	}
}

// Index returns the position of the focused ID in Order, or -1.
func (f *FocusManager) Index() int {
	return slices.Index(f.Order, f.Current)
}

// Next advances focus to the next column in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.set(f.Order[(f.Index()+1)%len(f.Order)])
	return f.Current
}

// SetIndex focuses the i-th ID in order.
func (f *FocusManager) SetIndex(i int) bool {
	if i < 0 || i >= len(f.Order) {
		return false
	}
	f.set(f.Order[i])
	return true
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
