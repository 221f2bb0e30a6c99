package present

import (
	"html"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/agency-dashboard/internal/geo"
	"github.com/sells-group/agency-dashboard/internal/model"
)

// Map defaults.
const (
	DefaultZoom   = 8
	DefaultWidth  = 700
	DefaultHeight = 500
)

// MapOptions configures Map. Zero fields take the defaults.
type MapOptions struct {
	Zoom   int
	Width  int
	Height int
}

// LineStyle is the Leaflet path style of the connectors.
type LineStyle struct {
	Color  string `json:"color"`
	Weight int    `json:"weight"`
}

// MapView is the map document: a fixed center, one marker per agency and one
// straight connector from the center to each marker.
type MapView struct {
	Center         model.Coordinates          `json:"center"`
	Zoom           int                        `json:"zoom"`
	Width          int                        `json:"width"`
	Height         int                        `json:"height"`
	Markers        *geojson.FeatureCollection `json:"markers"`
	Connectors     *geojson.FeatureCollection `json:"connectors"`
	ConnectorStyle LineStyle                  `json:"connector_style"`
}

// Map builds the map view centered on Brussels.
func Map(rows []model.EnrichedAgency, opts MapOptions) MapView {
	view := MapView{
		Center:         geo.Center,
		Zoom:           orDefault(opts.Zoom, DefaultZoom),
		Width:          orDefault(opts.Width, DefaultWidth),
		Height:         orDefault(opts.Height, DefaultHeight),
		Markers:        &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(rows))},
		Connectors:     &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(rows))},
		ConnectorStyle: LineStyle{Color: "blue", Weight: 1},
	}

	for _, r := range rows {
		view.Markers.Features = append(view.Markers.Features, &geojson.Feature{
			Geometry: geo.Point(r.Coordinates),
			Properties: map[string]any{
				"name":    r.Name,
				"address": r.Address,
				"popup":   PopupLabel(r.Name, r.Address),
			},
		})
		view.Connectors.Features = append(view.Connectors.Features, &geojson.Feature{
			Geometry:   geo.Connector(view.Center, r.Coordinates),
			Properties: map[string]any{"name": r.Name},
		})
	}
	return view
}

// PopupLabel is the marker label: the name in bold above the address.
func PopupLabel(name, address string) string {
	return "<b>" + html.EscapeString(name) + "</b><br>" + html.EscapeString(address)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
