// Package resume holds the résumé content model and its file loader.
//
// A document is a flat mapping from a section's document key (e.g. "workExp")
// to its payload. Any key may be absent; the section registry decides which
// ones are shown.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a document parses but holds no sections.
var ErrEmptyDocument = errors.New("document has no sections")

// Document maps a document key to its section payload.
type Document map[string]*Section

// Section is the renderable payload of one résumé section.
type Section struct {
	Title   string   `yaml:"title"`
	Entries []Entry  `yaml:"entries"`
	Contact *Contact `yaml:"contact,omitempty"` // only used by the basic-info section
}

// IsEmpty reports whether the section carries nothing worth rendering.
// A nil section is empty.
func (s *Section) IsEmpty() bool {
	if s == nil {
		return true
	}
	return strings.TrimSpace(s.Title) == "" && len(s.Entries) == 0 && s.Contact.IsZero()
}

// Hidden reports whether the section is present but has no title.
// Hidden sections keep their slot but render nothing.
func (s *Section) Hidden() bool {
	return s == nil || strings.TrimSpace(s.Title) == ""
}

// Contact is the header information shown above the columns.
type Contact struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// IsZero reports whether no contact field is set.
func (c *Contact) IsZero() bool {
	return c == nil || *c == Contact{}
}

// Entry is one item within a section (a job, a degree, a project...).
type Entry struct {
	Title     string   `yaml:"title"`
	Subtitle  string   `yaml:"subtitle"`
	Link      string   `yaml:"link"`
	StartDate *Date    `yaml:"startDate"`
	EndDate   *Date    `yaml:"endDate"`
	Points    []string `yaml:"points"`
}

// HasDateRange reports whether both ends of the date range are set.
// Entries with only one date show no date line.
func (e Entry) HasDateRange() bool {
	return e.StartDate != nil && e.EndDate != nil
}

// Parse decodes a YAML (or JSON) document. Unknown fields inside a section
// are rejected so typos surface at load time.
func Parse(data []byte) (Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
