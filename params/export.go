package params

// GeoJSONExt replaces the input file's extension to derive the output path.
// RejectLogExt likewise derives the reject log path.
const (
	GeoJSONExt   = ".geojson"
	RejectLogExt = ".rejects.log"
)

type ExportConfig struct {
	// OutputPath overrides the derived output path when non-empty.
	OutputPath string

	// StrokeWidth is the fixed stroke width tagged on every trip feature.
	StrokeWidth float64
}

var DefaultExportConfig = ExportConfig{
	StrokeWidth: 3,
}

// StrokePalette colors trip features, cycled by 0-based trip index.
// Read-only. Chosen for mutual contrast on light basemaps.
var StrokePalette = []string{
	"#e6194b",
	"#3cb44b",
	"#ffe119",
	"#4363d8",
	"#f58231",
	"#911eb4",
	"#46f0f0",
	"#f032e6",
	"#bcf60c",
	"#fabebe",
	"#008080",
	"#e6beff",
	"#9a6324",
	"#fffac8",
	"#800000",
	"#aaffc3",
	"#808000",
}
