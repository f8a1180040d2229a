// Package ui renders a résumé as two columns of section cards with Bubble Tea
// and turns mouse and keyboard gestures into layout drag events.
//
// Core pieces:
//   - View: a screen with its own model, update, view (Elm-style)
//   - ResumeView: the two-column résumé, its cursor and the drag gesture
//   - AppModel: root model; routes keys through the leader-key handler first
//   - FocusManager: tracks and rotates focus across the columns
//
// A drag is reported to the layout engine as a drag-over for every section
// the gesture passes, then a single drag-end for the section being moved.
package ui
