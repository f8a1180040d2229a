package ui

// AppMode represents what the résumé view is doing with input.
type AppMode int

const (
	// ModeBrowse moves the cursor between sections.
	ModeBrowse AppMode = iota
	// ModeDragging carries a grabbed section; cursor moves raise drag-over.
	ModeDragging
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}
