package ui

import "resumeview/internal/section"

// DragOverMsg reports that a drag gesture is over the section ID.
type DragOverMsg struct {
	ID section.ID
}

// DragEndMsg reports that the drag of section ID has finished.
type DragEndMsg struct {
	ID section.ID
}

// SwapResult describes the most recent drag end.
type SwapResult struct {
	Source  section.ID
	Target  section.ID
	Applied bool
}

// Moved reports whether two different sections changed places.
func (r SwapResult) Moved() bool {
	return r.Applied && r.Source != r.Target
}

// CancelDragMsg drops the grabbed section without ending the gesture (SPC c).
type CancelDragMsg struct{}

// ToggleHelpMsg switches between short and full key help (SPC ?).
type ToggleHelpMsg struct{}

// ScrollTopMsg scrolls the résumé back to the header (SPC g).
type ScrollTopMsg struct{}
