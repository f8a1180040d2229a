package section

import (
	"fmt"
	"strings"

	"resumeview/internal/resume"
)

// Names maps each section ID to the key that holds it in a document.
type Names map[ID]string

// DefaultNames returns the identity mapping: every ID is looked up under its
// own name.
func DefaultNames() Names {
	names := make(Names, len(All()))
	for _, id := range All() {
		names[id] = string(id)
	}
	return names
}

// ParseNames builds a mapping from raw config values layered over
// DefaultNames. Keys must be known IDs and values must be non-empty.
func ParseNames(raw map[string]string) (Names, error) {
	names := DefaultNames()
	for k, v := range raw {
		id, err := Parse(k)
		if err != nil {
			return nil, err
		}
		names[id] = v
	}
	if err := names.Validate(); err != nil {
		return nil, err
	}
	return names, nil
}

// Validate rejects unknown IDs and empty document keys.
func (n Names) Validate() error {
	for id, key := range n {
		if !id.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownID, id)
		}
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("section %s: empty document key", id)
		}
	}
	return nil
}

// Registry maps section IDs to the payloads that will be rendered.
// Only sections with data are present.
type Registry map[ID]*resume.Section

// Build resolves every known ID through names and keeps the ones whose
// payload is non-empty. A nil names uses DefaultNames.
func Build(doc resume.Document, names Names) Registry {
	if names == nil {
		names = DefaultNames()
	}
	reg := make(Registry)
	for _, id := range All() {
		key, ok := names[id]
		if !ok {
			continue
		}
		payload := doc[key]
		if payload.IsEmpty() {
			continue
		}
		reg[id] = payload
	}
	return reg
}

// Lookup returns the payload for id. Unregistered IDs return (nil, false).
func (r Registry) Lookup(id ID) (*resume.Section, bool) {
	payload, ok := r[id]
	return payload, ok
}

// IDs returns the registered IDs in declaration order.
func (r Registry) IDs() []ID {
	var ids []ID
	for _, id := range All() {
		if _, ok := r[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
