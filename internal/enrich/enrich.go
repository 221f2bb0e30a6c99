// Package enrich joins loaded agencies to the coordinates of their locality.
package enrich

import (
	"go.uber.org/zap"

	"github.com/sells-group/agency-dashboard/internal/geo"
	"github.com/sells-group/agency-dashboard/internal/model"
)

// Enrich attaches coordinates to every agency in ds, in load order. Unknown
// localities get the table's default entry, so every result has a pair.
func Enrich(ds *model.Dataset, table geo.Table) []model.EnrichedAgency {
	if ds == nil {
		return nil
	}

	out := make([]model.EnrichedAgency, len(ds.Agencies))
	for i, a := range ds.Agencies {
		c, ok := table.Lookup(a.Locality)
		if !ok {
			c = table.Default()
			zap.L().Debug("enrich: locality not in table, using default",
				zap.String("agency", a.Name),
				zap.String("locality", a.Locality),
			)
		}
		out[i] = model.EnrichedAgency{Agency: a, Coordinates: c, Matched: ok}
	}
	return out
}
