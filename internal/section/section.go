// Package section defines the fixed set of résumé section identifiers and
// the registry that resolves them to document payloads.
package section

import (
	"errors"
	"fmt"
)

// ErrUnknownID is returned when a string does not name a known section.
var ErrUnknownID = errors.New("unknown section id")

// ID identifies a résumé section. The zero value is not a valid ID.
type ID string

const (
	WorkExp     ID = "workExp"
	Project     ID = "project"
	Achievement ID = "achievement"
	Education   ID = "education"
	BasicInfo   ID = "basicInfo"
	Summary     ID = "summary"
	Other       ID = "other"
)

// All returns every section ID in declaration order.
func All() []ID {
	return []ID{WorkExp, Project, Achievement, Education, BasicInfo, Summary, Other}
}

// Valid reports whether id is one of the known section IDs.
func (id ID) Valid() bool {
	switch id {
	case WorkExp, Project, Achievement, Education, BasicInfo, Summary, Other:
		return true
	default:
		return false
	}
}

func (id ID) String() string {
	return string(id)
}

// Parse converts s to an ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownID, s)
	}
	return id, nil
}

// ParseList converts each string in ss to an ID.
func ParseList(ss []string) ([]ID, error) {
	ids := make([]ID, 0, len(ss))
	for _, s := range ss {
		id, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
