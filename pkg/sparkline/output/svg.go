package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
)

// SVGStyle holds the colors and stroke of an SVG sparkline.
type SVGStyle struct {
	LineColor      string
	BarColor       string
	BandColor      string
	ReferenceColor string
	UpColor        string
	DownColor      string
	SameColor      string
	StrokeWidth    float64
}

// DefaultSVGStyle returns the default SVG style.
func DefaultSVGStyle() SVGStyle {
	return SVGStyle{
		LineColor:      "#376092",
		BarColor:       "#9bb7d4",
		BandColor:      "#dbe5f1",
		ReferenceColor: "#c0504d",
		UpColor:        "#2e7d32",
		DownColor:      "#c62828",
		SameColor:      "#616161",
		StrokeWidth:    1.5,
	}
}

func (st SVGStyle) css() string {
	rules := []string{
		fmt.Sprintf(".line{fill:none;stroke:%s;stroke-width:%g;stroke-linejoin:round}", st.LineColor, st.StrokeWidth),
		fmt.Sprintf(".bar{fill:%s}", st.BarColor),
		fmt.Sprintf(".band{fill:%s;opacity:0.6}", st.BandColor),
		fmt.Sprintf(".reference{stroke:%s;stroke-width:1;stroke-dasharray:2,2}", st.ReferenceColor),
		fmt.Sprintf(".point.up{fill:%s}", st.UpColor),
		fmt.Sprintf(".point.down{fill:%s}", st.DownColor),
		fmt.Sprintf(".point.same{fill:%s}", st.SameColor),
		fmt.Sprintf(".sparkline:hover .line{stroke-width:%g}", st.StrokeWidth*1.5),
		".bar:hover{opacity:0.7}",
		".sparkline:hover .band{opacity:0.9}",
	}
	return strings.Join(rules, "\n")
}

// ToSVG draws s as a standalone SVG document. Shapes are drawn back to
// front: band, bars, line, last point marker, reference line.
func ToSVG(w io.Writer, s *models.Sparkline, st SVGStyle) {
	canvas := svg.New(w)
	canvas.Start(s.Width, s.Height)
	canvas.Style("text/css", st.css())
	canvas.Group(`class="sparkline"`)

	if s.Empty() {
		canvas.Gend()
		canvas.End()
		return
	}

	last := s.Points[len(s.Points)-1]
	canvas.Title(fmt.Sprintf("%g (%s)", last.Value, s.Direction))

	left, right := s.Extent()
	if right == left {
		left, right = 0, s.Width
	}

	if s.Band != nil {
		canvas.Rect(left, s.Band.Top(), right-left, s.Band.HalfHeight*2, `class="band"`)
	}

	if s.DrawBars {
		drawBars(canvas, s)
	}

	if s.DrawLine {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polyline(xs, ys, `class="line"`)
	}

	if s.PointRadius > 0 {
		canvas.Circle(last.X, last.Y, s.PointRadius, fmt.Sprintf(`class="point %s"`, s.Direction))
	}

	if s.ReferenceLine != nil {
		canvas.Line(left, *s.ReferenceLine, right, *s.ReferenceLine, `class="reference"`)
	}

	canvas.Gend()
	canvas.End()
}

// drawBars draws one bar per point, from the point down to the bottom edge.
func drawBars(canvas *svg.SVG, s *models.Sparkline) {
	step := s.Width
	if len(s.Points) > 1 {
		step = s.Points[1].X - s.Points[0].X
	}
	barWidth := math.Max(step-1, 1)

	for _, p := range s.Points {
		w := math.Min(barWidth, s.Width-p.X)
		h := math.Max(s.Height-p.Y, 0)
		canvas.Rect(p.X, p.Y, w, h, `class="bar"`)
	}
}
