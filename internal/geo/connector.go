package geo

import (
	"github.com/twpayne/go-geom"

	"github.com/sells-group/agency-dashboard/internal/model"
)

// SRID of every geometry built here (WGS 84).
const SRID = 4326

// Point returns c as a geometry in lon/lat order.
func Point(c model.Coordinates) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude}).SetSRID(SRID)
}

// Connector returns the straight line from one point to another.
func Connector(from, to model.Coordinates) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, []float64{
		from.Longitude, from.Latitude,
		to.Longitude, to.Latitude,
	}).SetSRID(SRID)
}
