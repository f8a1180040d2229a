package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeview/internal/resume"
)

func testDocument() resume.Document {
	return resume.Document{
		"workExp":   {Title: "Work Experience", Entries: []resume.Entry{{Title: "Engineer"}}},
		"project":   {Title: "Projects"},
		"education": {Title: "Education"},
		"basicInfo": {Contact: &resume.Contact{Name: "Ada"}},
		"summary":   {},
		"other":     nil,
	}
}

func TestBuild_FiltersEmptySections(t *testing.T) {
	reg := Build(testDocument(), DefaultNames())

	assert.Equal(t, []ID{WorkExp, Project, Education, BasicInfo}, reg.IDs())

	_, ok := reg.Lookup(Achievement)
	assert.False(t, ok, "achievement is absent from the document")
	_, ok = reg.Lookup(Summary)
	assert.False(t, ok, "summary has no data")
	_, ok = reg.Lookup(Other)
	assert.False(t, ok, "other is nil")
}

func TestBuild_Deterministic(t *testing.T) {
	doc := testDocument()
	first := Build(doc, nil)
	second := Build(doc, DefaultNames())
	assert.Equal(t, first, second)
}

func TestBuild_CustomNames(t *testing.T) {
	doc := resume.Document{
		"experience": {Title: "Experience"},
		"workExp":    {Title: "ignored"},
	}
	names, err := ParseNames(map[string]string{"workExp": "experience"})
	require.NoError(t, err)

	reg := Build(doc, names)
	payload, ok := reg.Lookup(WorkExp)
	require.True(t, ok)
	assert.Equal(t, "Experience", payload.Title)
}

func TestBuild_MissingName(t *testing.T) {
	names := Names{Project: "project"}
	reg := Build(testDocument(), names)
	assert.Equal(t, []ID{Project}, reg.IDs())
}

func TestRegistry_LookupOnEmpty(t *testing.T) {
	var reg Registry
	payload, ok := reg.Lookup(Achievement)
	assert.Nil(t, payload)
	assert.False(t, ok)
	assert.Empty(t, reg.IDs())
}

func TestParseNames_Errors(t *testing.T) {
	_, err := ParseNames(map[string]string{"hobbies": "hobbies"})
	assert.ErrorIs(t, err, ErrUnknownID)

	_, err = ParseNames(map[string]string{"project": " "})
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	for _, id := range All() {
		got, err := Parse(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := Parse("")
	assert.ErrorIs(t, err, ErrUnknownID)

	ids, err := ParseList([]string{"project", "summary"})
	require.NoError(t, err)
	assert.Equal(t, []ID{Project, Summary}, ids)

	_, err = ParseList([]string{"project", "nope"})
	assert.ErrorIs(t, err, ErrUnknownID)
}
