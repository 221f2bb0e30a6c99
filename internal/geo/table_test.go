package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/agency-dashboard/internal/model"
)

func TestBelgium_Entries(t *testing.T) {
	t.Parallel()

	table := Belgium()
	require.Equal(t, 7, table.Len())

	tests := []struct {
		locality string
		want     model.Coordinates
	}{
		{"Waterloo", model.Coordinates{Latitude: 50.7219, Longitude: 4.3997}},
		{"Brussels", model.Coordinates{Latitude: 50.8466, Longitude: 4.3528}},
		{"Strombeek-Bever", model.Coordinates{Latitude: 50.9050, Longitude: 4.3681}},
		{"Brussels (Uccle)", model.Coordinates{Latitude: 50.7997, Longitude: 4.3476}},
		{"Sint-Niklaas", model.Coordinates{Latitude: 51.1642, Longitude: 4.1439}},
		{"Brussels (Ixelles)", model.Coordinates{Latitude: 50.8287, Longitude: 4.3676}},
		{"Brussels (1000)", model.Coordinates{Latitude: 50.8466, Longitude: 4.3528}},
	}

	for _, tt := range tests {
		t.Run(tt.locality, func(t *testing.T) {
			t.Parallel()
			got, ok := table.Lookup(tt.locality)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := Belgium().Lookup("Unknown Town")
	assert.False(t, ok)

	// Matching is exact apart from surrounding whitespace.
	_, ok = Belgium().Lookup("waterloo")
	assert.False(t, ok)
	_, ok = Belgium().Lookup("  Waterloo ")
	assert.True(t, ok)
}

func TestLookup_NormalizesUnicode(t *testing.T) {
	t.Parallel()

	table := Table{entries: map[string]model.Coordinates{"Li\u00e8ge": {Latitude: 50.6326, Longitude: 5.5797}}}

	// "e" followed by a combining grave accent.
	got, ok := table.Lookup("Lie\u0300ge")
	require.True(t, ok)
	assert.InDelta(t, 50.6326, got.Latitude, 0.00001)
}

func TestResolve_FallsBackToBrussels(t *testing.T) {
	t.Parallel()

	table := Belgium()
	for _, locality := range []string{"Unknown Town", "", "Antwerpen", "brussels"} {
		got := table.Resolve(locality)
		assert.Equal(t, model.Coordinates{Latitude: 50.8466, Longitude: 4.3528}, got, locality)
	}

	assert.Equal(t, model.Coordinates{Latitude: 50.7219, Longitude: 4.3997}, table.Resolve("Waterloo"))
}

func TestDefault_EmptyTable(t *testing.T) {
	t.Parallel()

	var table Table
	assert.Equal(t, Center, table.Default())
	assert.Equal(t, Center, table.Resolve("Waterloo"))
	assert.Empty(t, table.Localities())
}

func TestLocalities_Sorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Brussels",
		"Brussels (1000)",
		"Brussels (Ixelles)",
		"Brussels (Uccle)",
		"Sint-Niklaas",
		"Strombeek-Bever",
		"Waterloo",
	}, Belgium().Localities())
}

func TestConnector(t *testing.T) {
	t.Parallel()

	to := model.Coordinates{Latitude: 51.1642, Longitude: 4.1439}
	line := Connector(Center, to)

	assert.Equal(t, SRID, line.SRID())
	require.Equal(t, 2, line.NumCoords())
	assert.Equal(t, []float64{4.3528, 50.8466}, []float64(line.Coord(0)))
	assert.Equal(t, []float64{4.1439, 51.1642}, []float64(line.Coord(1)))
}

func TestPoint(t *testing.T) {
	t.Parallel()

	p := Point(model.Coordinates{Latitude: 50.7219, Longitude: 4.3997})
	assert.Equal(t, SRID, p.SRID())
	assert.InDelta(t, 4.3997, p.X(), 0.00001)
	assert.InDelta(t, 50.7219, p.Y(), 0.00001)
}
