// Package dashboard runs the load, enrich and present pipeline that backs
// one dashboard page.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/agency-dashboard/internal/config"
	"github.com/sells-group/agency-dashboard/internal/enrich"
	"github.com/sells-group/agency-dashboard/internal/geo"
	"github.com/sells-group/agency-dashboard/internal/loader"
	"github.com/sells-group/agency-dashboard/internal/model"
	"github.com/sells-group/agency-dashboard/internal/present"
)

// Section IDs in page order.
const (
	SectionTable = "table"
	SectionChart = "chart"
	SectionMap   = "map"
)

// Options configures a Dashboard.
type Options struct {
	Title   string
	Heading string

	FileName string
	// DataPath, when set, is used instead of searching BaseDir.
	DataPath string
	// BaseDir is searched first, then its parent. Empty means the
	// executable's directory.
	BaseDir  string
	Encoding string

	Chart present.ChartOptions
	Map   present.MapOptions
}

// OptionsFromConfig maps application config onto dashboard options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Title:    cfg.App.Title,
		Heading:  cfg.App.Heading,
		FileName: cfg.Data.FileName,
		DataPath: cfg.Data.Path,
		BaseDir:  cfg.Data.BaseDir,
		Encoding: cfg.Data.Encoding,
		Chart:    present.ChartOptions{ColorScale: cfg.Chart.ColorScale},
		Map: present.MapOptions{
			Zoom:   cfg.Map.Zoom,
			Width:  cfg.Map.Width,
			Height: cfg.Map.Height,
		},
	}
}

// Section is one titled block of the page.
type Section struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
}

// Page is everything one dashboard render needs.
type Page struct {
	BuildID  string                 `json:"build_id"`
	BuiltAt  time.Time              `json:"built_at"`
	Title    string                 `json:"title"`
	Heading  string                 `json:"heading"`
	Source   string                 `json:"source"`
	Agencies []model.EnrichedAgency `json:"agencies"`
	Table    present.TableView      `json:"table"`
	Chart    present.Figure         `json:"chart"`
	Map      present.MapView        `json:"map"`
}

// Sections returns the page sections in render order.
func (p *Page) Sections() []Section {
	return []Section{
		{ID: SectionTable, Heading: "Data Table"},
		{ID: SectionChart, Heading: "Latest Profit After Tax (Euro)"},
		{ID: SectionMap, Heading: "Map of Agents with Connectors"},
	}
}

// Dashboard builds pages. It holds no per-build state.
type Dashboard struct {
	opts  Options
	table geo.Table
}

// New creates a Dashboard over the fixed Belgian coordinate table.
func New(opts Options) *Dashboard {
	return &Dashboard{opts: opts, table: geo.Belgium()}
}

// DataFile resolves the dataset path.
func (d *Dashboard) DataFile() (string, error) {
	if d.opts.DataPath != "" {
		return loader.Resolve("", d.opts.FileName, d.opts.DataPath)
	}
	base := d.opts.BaseDir
	if base == "" {
		dir, err := loader.ExecutableDir()
		if err != nil {
			return "", err
		}
		base = dir
	}
	return loader.Resolve(base, d.opts.FileName, "")
}

// Build runs one full pass: resolve the file, load it, enrich it and build
// the table, chart and map views in that order.
func (d *Dashboard) Build(ctx context.Context) (*Page, error) {
	buildID := uuid.New().String()
	start := time.Now()
	log := zap.L().With(zap.String("build_id", buildID))

	path, err := d.DataFile()
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: resolve data file")
	}

	ds, err := loader.Load(ctx, path, loader.Options{Encoding: d.opts.Encoding})
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: load")
	}

	rows := enrich.Enrich(ds, d.table)

	page := &Page{
		BuildID:  buildID,
		BuiltAt:  start.UTC(),
		Title:    d.opts.Title,
		Heading:  d.opts.Heading,
		Source:   path,
		Agencies: rows,
	}
	page.Table = present.Table(ds, rows)
	page.Chart = present.BarChart(rows, d.opts.Chart)
	page.Map = present.Map(rows, d.opts.Map)

	log.Info("dashboard built",
		zap.String("source", path),
		zap.Int("agencies", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return page, nil
}
