// Package geo holds the fixed locality coordinate table and the straight-line
// geometry drawn on the dashboard map.
package geo

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/agency-dashboard/internal/model"
)

// DefaultLocality is the entry used when a locality has no exact match.
const DefaultLocality = "Brussels"

// Center is the fixed map center and connector origin (Brussels).
var Center = model.Coordinates{Latitude: 50.8466, Longitude: 4.3528}

// Table maps locality names to approximate coordinates. It has no mutators;
// Belgium returns the fixed table.
type Table struct {
	entries map[string]model.Coordinates
}

var belgium = Table{entries: map[string]model.Coordinates{
	"Waterloo":           {Latitude: 50.7219, Longitude: 4.3997},
	"Brussels":           Center,
	"Strombeek-Bever":    {Latitude: 50.9050, Longitude: 4.3681},
	"Brussels (Uccle)":   {Latitude: 50.7997, Longitude: 4.3476},
	"Sint-Niklaas":       {Latitude: 51.1642, Longitude: 4.1439},
	"Brussels (Ixelles)": {Latitude: 50.8287, Longitude: 4.3676},
	"Brussels (1000)":    {Latitude: 50.8466, Longitude: 4.3528},
}}

// Belgium returns the fixed coordinate table of agency localities.
func Belgium() Table {
	return belgium
}

// Lookup returns the coordinates of an exactly matching locality.
func (t Table) Lookup(locality string) (model.Coordinates, bool) {
	c, ok := t.entries[normalize(locality)]
	return c, ok
}

// Resolve returns the coordinates of locality, falling back to the
// DefaultLocality entry. It never fails.
func (t Table) Resolve(locality string) model.Coordinates {
	if c, ok := t.Lookup(locality); ok {
		return c
	}
	return t.Default()
}

// Default returns the fallback coordinates.
func (t Table) Default() model.Coordinates {
	if c, ok := t.entries[DefaultLocality]; ok {
		return c
	}
	return Center
}

// Localities returns the table's locality names sorted.
func (t Table) Localities() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.entries) }

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
