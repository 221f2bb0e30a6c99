package model

// Column names of the agency dataset.
const (
	ColumnName     = "Name"
	ColumnAddress  = "Address"
	ColumnLocality = "Locality"
	ColumnProfit   = "Latest profit after tax (€)"

	// ColumnDerivedProfit is appended to the loaded columns and holds the
	// cleaned numeric profit.
	ColumnDerivedProfit = "Profit"
)

// RequiredColumns lists the columns every dataset must carry.
var RequiredColumns = []string{ColumnName, ColumnAddress, ColumnLocality, ColumnProfit}

// Agency is one row of the dataset.
type Agency struct {
	Name       string `json:"name" yaml:"name" csv:"Name"`
	Address    string `json:"address" yaml:"address" csv:"Address"`
	Locality   string `json:"locality" yaml:"locality" csv:"Locality"`
	ProfitText string `json:"profit_text" yaml:"profit_text" csv:"Latest profit after tax (€)"`
	Profit     Amount `json:"profit" yaml:"profit" csv:"Profit"`

	// Row holds every cell of the source row in Dataset.Columns order.
	Row []string `json:"-" yaml:"-" csv:"-"`
}

// Dataset is the loaded table: the source header in file order and one
// Agency per data row in load order.
type Dataset struct {
	Source   string   `json:"source" yaml:"source"`
	Columns  []string `json:"columns" yaml:"columns"`
	Agencies []Agency `json:"agencies" yaml:"agencies"`
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude" csv:"Latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude" csv:"Longitude"`
}

// EnrichedAgency is an Agency joined to the coordinates of its locality.
type EnrichedAgency struct {
	Agency      `yaml:",inline"`
	Coordinates `yaml:",inline"`

	// Matched reports whether the locality had its own table entry.
	Matched bool `json:"matched" yaml:"matched" csv:"-"`
}
