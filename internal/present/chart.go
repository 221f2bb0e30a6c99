package present

import "github.com/sells-group/agency-dashboard/internal/model"

// DefaultColorScale is the continuous Plotly scale used for profit.
const DefaultColorScale = "Plasma"

// ChartOptions configures BarChart.
type ChartOptions struct {
	ColorScale string
}

// Figure is a Plotly figure document.
type Figure struct {
	Data   []BarTrace `json:"data"`
	Layout Layout     `json:"layout"`
}

// BarTrace is a Plotly bar trace. Nil entries in Y and Marker.Color encode
// as null and render as gaps.
type BarTrace struct {
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	X             []string   `json:"x"`
	Y             []*float64 `json:"y"`
	Marker        Marker     `json:"marker"`
	HoverTemplate string     `json:"hovertemplate"`
}

// Marker colors bars by value.
type Marker struct {
	Color      []*float64 `json:"color"`
	ColorScale string     `json:"colorscale"`
	ShowScale  bool       `json:"showscale"`
	ColorBar   ColorBar   `json:"colorbar"`
}

// ColorBar labels the color scale.
type ColorBar struct {
	Title Title `json:"title"`
}

// Layout holds the figure title and axis titles.
type Layout struct {
	Title Title `json:"title"`
	XAxis Axis  `json:"xaxis"`
	YAxis Axis  `json:"yaxis"`
}

// Axis is a Plotly axis.
type Axis struct {
	Title Title `json:"title"`
}

// Title is a Plotly title object.
type Title struct {
	Text string `json:"text"`
}

const profitLabel = "Profit (€)"

// BarChart builds one bar per agency in load order: name on the category
// axis, profit as value and color.
func BarChart(rows []model.EnrichedAgency, opts ChartOptions) Figure {
	scale := opts.ColorScale
	if scale == "" {
		scale = DefaultColorScale
	}

	x := make([]string, len(rows))
	y := make([]*float64, len(rows))
	for i, r := range rows {
		x[i] = r.Name
		y[i] = r.Profit.Ptr()
	}

	return Figure{
		Data: []BarTrace{{
			Type: "bar",
			Name: profitLabel,
			X:    x,
			Y:    y,
			Marker: Marker{
				Color:      y,
				ColorScale: scale,
				ShowScale:  true,
				ColorBar:   ColorBar{Title: Title{Text: profitLabel}},
			},
			HoverTemplate: "Name=%{x}<br>" + profitLabel + "=%{y}<extra></extra>",
		}},
		Layout: Layout{
			Title: Title{Text: "Latest Profit After Tax by Company"},
			XAxis: Axis{Title: Title{Text: "Company"}},
			YAxis: Axis{Title: Title{Text: profitLabel}},
		},
	}
}
