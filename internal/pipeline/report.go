package pipeline

import (
	"fmt"

	"github.com/ironsheep/shape-color-id/internal/detection"
	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// Detection is one labeled contour.
type Detection struct {
	Index    int             `json:"index"` // 1-based position in the report
	Shape    detection.Shape `json:"shape"`
	Color    string          `json:"color"`
	Centroid geometry.Point  `json:"centroid"`
	Vertices int             `json:"vertices"` // Vertex count of the approximated polygon
	MeanHex  string          `json:"mean_hex"` // Mean color inside the contour, "#RRGGBB"
	Area     float64         `json:"area"`
}

// Label returns "<Color> <Shape>".
func (d Detection) Label() string {
	return fmt.Sprintf("%s %s", d.Color, d.Shape)
}

// String returns the report line "<n>. <Color> <Shape> at (<x>,<y>)".
func (d Detection) String() string {
	return fmt.Sprintf("%d. %s at (%d,%d)", d.Index, d.Label(), d.Centroid.X, d.Centroid.Y)
}

// Report is the result of processing one image.
type Report struct {
	Image      string      `json:"image,omitempty"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Detections []Detection `json:"detections"`
}
