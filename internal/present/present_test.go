package present

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/agency-dashboard/internal/geo"
	"github.com/sells-group/agency-dashboard/internal/model"
)

var columns = []string{"Name", "Address", "Locality", "Latest profit after tax (€)", "Website"}

func fixture() (*model.Dataset, []model.EnrichedAgency) {
	ds := &model.Dataset{
		Columns: columns,
		Agencies: []model.Agency{
			{
				Name: "Immo Waterloo", Address: "Chaussée de Bruxelles 1", Locality: "Waterloo",
				ProfitText: "€1,234,567", Profit: model.NewAmount(1234567),
				Row: []string{"Immo Waterloo", "Chaussée de Bruxelles 1", "Waterloo", "€1,234,567", "immo.be"},
			},
			{
				Name: "R&D <Realty>", Address: "Grand Place 2", Locality: "Unknown Town",
				ProfitText: "N/A",
				Row:        []string{"R&D <Realty>", "Grand Place 2", "Unknown Town", "N/A", ""},
			},
		},
	}
	table := geo.Belgium()
	rows := []model.EnrichedAgency{
		{Agency: ds.Agencies[0], Coordinates: table.Resolve("Waterloo"), Matched: true},
		{Agency: ds.Agencies[1], Coordinates: table.Resolve("Unknown Town")},
	}
	return ds, rows
}

func TestTable_ColumnsAndRows(t *testing.T) {
	t.Parallel()

	ds, rows := fixture()
	view := Table(ds, rows)

	assert.Equal(t, append(append([]string{}, columns...), "Profit"), view.Columns)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, []string{"Immo Waterloo", "Chaussée de Bruxelles 1", "Waterloo", "€1,234,567", "immo.be", "1,234,567"}, view.Rows[0])
	assert.Equal(t, "", view.Rows[1][5])
	assert.Equal(t, "N/A", view.Rows[1][3])
}

func TestTable_NoCoordinates(t *testing.T) {
	t.Parallel()

	ds, rows := fixture()
	view := Table(ds, rows)

	assert.NotContains(t, view.Columns, "Latitude")
	assert.NotContains(t, view.Columns, "Longitude")
	for _, row := range view.Rows {
		assert.NotContains(t, row, "50.7219")
		assert.NotContains(t, row, "4.3997")
	}
}

func TestTable_DoesNotAliasColumns(t *testing.T) {
	t.Parallel()

	ds, rows := fixture()
	_ = Table(ds, rows)
	assert.Equal(t, columns, ds.Columns)
}

func TestTable_ReplacesExistingProfitColumn(t *testing.T) {
	t.Parallel()

	ds := &model.Dataset{Columns: []string{"Name", "Profit"}}
	rows := []model.EnrichedAgency{{Agency: model.Agency{
		Name: "A", Profit: model.NewAmount(12.5), Row: []string{"A", "old"},
	}}}

	view := Table(ds, rows)
	assert.Equal(t, []string{"Name", "Profit"}, view.Columns)
	assert.Equal(t, []string{"A", "12.5"}, view.Rows[0])
}

func TestTable_RebuildsRowFromFields(t *testing.T) {
	t.Parallel()

	ds := &model.Dataset{Columns: model.RequiredColumns}
	rows := []model.EnrichedAgency{{Agency: model.Agency{
		Name: "A", Address: "B", Locality: "C", ProfitText: "€5", Profit: model.NewAmount(5),
	}}}

	view := Table(ds, rows)
	assert.Equal(t, []string{"A", "B", "C", "€5", "5"}, view.Rows[0])
}

func TestBarChart(t *testing.T) {
	t.Parallel()

	_, rows := fixture()
	fig := BarChart(rows, ChartOptions{})

	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "bar", trace.Type)
	assert.Equal(t, []string{"Immo Waterloo", "R&D <Realty>"}, trace.X)
	require.Len(t, trace.Y, 2)
	require.NotNil(t, trace.Y[0])
	assert.InDelta(t, 1234567, *trace.Y[0], 1e-9)
	assert.Nil(t, trace.Y[1])
	assert.Equal(t, trace.Y, trace.Marker.Color)
	assert.Equal(t, DefaultColorScale, trace.Marker.ColorScale)
	assert.Equal(t, "Profit (€)", trace.Marker.ColorBar.Title.Text)

	assert.Equal(t, "Latest Profit After Tax by Company", fig.Layout.Title.Text)
	assert.Equal(t, "Company", fig.Layout.XAxis.Title.Text)
	assert.Equal(t, "Profit (€)", fig.Layout.YAxis.Title.Text)
}

func TestBarChart_JSONGaps(t *testing.T) {
	t.Parallel()

	_, rows := fixture()
	data, err := json.Marshal(BarChart(rows, ChartOptions{ColorScale: "Viridis"}))
	require.NoError(t, err)

	var doc struct {
		Data []struct {
			Y      []*float64 `json:"y"`
			Marker struct {
				ColorScale string `json:"colorscale"`
			} `json:"marker"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Data, 1)
	assert.Nil(t, doc.Data[0].Y[1])
	assert.Contains(t, string(data), `"y":[1234567,null]`)
	assert.Equal(t, "Viridis", doc.Data[0].Marker.ColorScale)
}

func TestBarChart_Empty(t *testing.T) {
	t.Parallel()

	fig := BarChart(nil, ChartOptions{})
	require.Len(t, fig.Data, 1)
	assert.Empty(t, fig.Data[0].X)
}

func TestMap_Defaults(t *testing.T) {
	t.Parallel()

	_, rows := fixture()
	view := Map(rows, MapOptions{})

	assert.Equal(t, model.Coordinates{Latitude: 50.8466, Longitude: 4.3528}, view.Center)
	assert.Equal(t, 8, view.Zoom)
	assert.Equal(t, 700, view.Width)
	assert.Equal(t, 500, view.Height)
	assert.Equal(t, LineStyle{Color: "blue", Weight: 1}, view.ConnectorStyle)
	assert.Len(t, view.Markers.Features, 2)
	assert.Len(t, view.Connectors.Features, 2)
}

func TestMap_Options(t *testing.T) {
	t.Parallel()

	view := Map(nil, MapOptions{Zoom: 11, Width: 900, Height: 600})
	assert.Equal(t, 11, view.Zoom)
	assert.Equal(t, 900, view.Width)
	assert.Equal(t, 600, view.Height)
	assert.Empty(t, view.Markers.Features)
}

func TestMap_ConnectorsStartAtCenter(t *testing.T) {
	t.Parallel()

	_, rows := fixture()
	view := Map(rows, MapOptions{})

	for i, f := range view.Connectors.Features {
		data, err := json.Marshal(f)
		require.NoError(t, err)

		var doc struct {
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		}
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "LineString", doc.Geometry.Type)
		require.Len(t, doc.Geometry.Coordinates, 2)
		assert.Equal(t, []float64{4.3528, 50.8466}, doc.Geometry.Coordinates[0])
		assert.Equal(t, []float64{rows[i].Longitude, rows[i].Latitude}, doc.Geometry.Coordinates[1])
	}
}

func TestMap_MarkersJSON(t *testing.T) {
	t.Parallel()

	_, rows := fixture()
	data, err := json.Marshal(Map(rows, MapOptions{}))
	require.NoError(t, err)

	var doc struct {
		Markers struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]string `json:"properties"`
			} `json:"features"`
		} `json:"markers"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "FeatureCollection", doc.Markers.Type)
	require.Len(t, doc.Markers.Features, 2)

	first := doc.Markers.Features[0]
	assert.Equal(t, "Point", first.Geometry.Type)
	assert.Equal(t, []float64{4.3997, 50.7219}, first.Geometry.Coordinates)
	assert.Equal(t, "<b>Immo Waterloo</b><br>Chaussée de Bruxelles 1", first.Properties["popup"])

	second := doc.Markers.Features[1]
	assert.Equal(t, []float64{4.3528, 50.8466}, second.Geometry.Coordinates)
	assert.Equal(t, "R&D <Realty>", second.Properties["name"])
}

func TestPopupLabel_Escapes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<b>R&amp;D &lt;Realty&gt;</b><br>Rue &#34;Neuve&#34;", PopupLabel("R&D <Realty>", `Rue "Neuve"`))
}
