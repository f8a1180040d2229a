// Package sample embeds example résumé documents.
//
// The files are compiled in so "resumeview example" works without any
// files on disk.
package sample

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
)

//go:embed example.yaml minimal.json
var sampleFS embed.FS

// Default is the name of the full example.
const Default = "example.yaml"

// Names returns the embedded file names, sorted.
func Names() []string {
	entries, err := sampleFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	slices.Sort(out)
	return out
}

// Get returns the embedded file called name. A name without an extension
// matches the first file with that stem, so "minimal" finds "minimal.json".
func Get(name string) ([]byte, error) {
	for _, n := range Names() {
		if n == name || strings.TrimSuffix(n, path.Ext(n)) == name {
			return sampleFS.ReadFile(n)
		}
	}
	return nil, fmt.Errorf("no sample %q (have %s)", name, strings.Join(Names(), ", "))
}
