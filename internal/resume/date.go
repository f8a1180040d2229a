package resume

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayouts are tried in order when parsing a date value.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"2006",
}

// Date is a calendar date read from a document.
type Date struct {
	time.Time
}

// ParseDate parses s using the first matching layout.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.Format("2006-01-02"), nil
}
