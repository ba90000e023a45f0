package chaosgame

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Style controls how a Frame is painted.
type Style struct {
	Background gg.RGBA
	Outline    gg.RGBA
	Point      gg.RGBA

	// LineWidth of the polygon outline.
	LineWidth float64

	// PointDiameter of the filled marker drawn for each point. The marker's
	// bounding box starts at the point, so a point at (x, y) covers
	// [x, x+d] × [y, y+d].
	PointDiameter float64
}

// DefaultStyle returns black marks on a white background with 2 pixel points.
func DefaultStyle() Style {
	return Style{
		Background:    gg.White,
		Outline:       gg.Black,
		Point:         gg.Black,
		LineWidth:     1,
		PointDiameter: 2,
	}
}

// Draw clears dc with the background color, strokes the polygon outline and
// fills a marker for every point in insertion order.
func Draw(dc *gg.Context, f Frame, s Style) error {
	dc.ClearWithColor(s.Background)

	if len(f.Vertices) > 0 {
		for i, v := range f.Vertices {
			x, y := v.Float()
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		setColor(dc, s.Outline)
		dc.SetLineWidth(s.LineWidth)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("chaosgame: stroke outline: %w", err)
		}
	}

	if len(f.Points) == 0 || s.PointDiameter <= 0 {
		return nil
	}
	r := s.PointDiameter / 2
	for _, p := range f.Points {
		x, y := p.Float()
		dc.DrawCircle(x+r, y+r, r)
	}
	setColor(dc, s.Point)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("chaosgame: fill points: %w", err)
	}
	return nil
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// Caption describes a run, e.g. "3 sides, fraction 0.50, 12,345 points".
// Counts use English digit grouping.
func Caption(sides int, fraction float64, points int) string {
	return message.NewPrinter(language.English).Sprintf("%d sides, fraction %.2f, %d points", sides, fraction, points)
}

// NewCaptionFace returns a Go Regular face of the given size in points.
func NewCaptionFace(size float64) (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("chaosgame: load caption font: %w", err)
	}
	return src.Face(size), nil
}

// DrawCaption writes s at the bottom-left corner of dc in the outline color.
func DrawCaption(dc *gg.Context, face text.Face, s string, style Style) {
	const margin = 8
	dc.SetFont(face)
	setColor(dc, style.Outline)
	dc.DrawString(s, margin, float64(dc.Height())-margin)
}
