package chaosgame

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
)

func isWhite(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Background != gg.White {
		t.Errorf("Background = %+v, want white", s.Background)
	}
	if s.Outline != gg.Black || s.Point != gg.Black {
		t.Errorf("Outline/Point = %+v/%+v, want black", s.Outline, s.Point)
	}
	if s.PointDiameter != 2 {
		t.Errorf("PointDiameter = %v, want 2", s.PointDiameter)
	}
}

func TestDrawOutlineAndPoints(t *testing.T) {
	dc := gg.NewContext(100, 100)
	defer dc.Close()

	f := Frame{
		Vertices: []Point{{10, 10}, {90, 10}, {90, 90}, {10, 90}},
		Points:   []Point{{50, 50}},
	}
	style := DefaultStyle()
	style.LineWidth = 2
	style.PointDiameter = 8

	if err := Draw(dc, f, style); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	img := dc.Image()

	// Marker center sits at (54, 54).
	if isWhite(img, 54, 54) {
		t.Error("point marker not drawn at (54, 54)")
	}
	if isWhite(img, 10, 50) {
		t.Error("outline not drawn on the left edge")
	}
	if isWhite(img, 50, 10) {
		t.Error("outline not drawn on the top edge")
	}
	if !isWhite(img, 30, 30) {
		t.Error("interior away from the marker is not background")
	}
}

func TestDrawClearsWithBackground(t *testing.T) {
	dc := gg.NewContext(20, 20)
	defer dc.Close()

	style := DefaultStyle()
	style.Background = gg.RGB(1, 0, 0)
	if err := Draw(dc, Frame{}, style); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	r, g, b, _ := dc.Image().At(5, 5).RGBA()
	if r < 0xf000 || g > 0x1000 || b > 0x1000 {
		t.Errorf("pixel = (%#x, %#x, %#x), want red background", r, g, b)
	}
}

func TestDrawEngineFrame(t *testing.T) {
	e := New(3, 0.5, WithSeed(2))
	e.Layout(200, 200)
	e.AdvanceN(2000)

	dc := gg.NewContext(200, 200)
	defer dc.Close()
	if err := Draw(dc, e.Render(200, 200), DefaultStyle()); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	img := dc.Image()
	dark := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if !isWhite(img, x, y) {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no marks drawn for 2000 points")
	}
}

func TestCaption(t *testing.T) {
	tests := []struct {
		sides    int
		fraction float64
		points   int
		want     string
	}{
		{3, 0.5, 12345, "3 sides, fraction 0.50, 12,345 points"},
		{5, 0.618, 0, "5 sides, fraction 0.62, 0 points"},
		{4, 0.25, 1_000_000, "4 sides, fraction 0.25, 1,000,000 points"},
	}

	for _, tt := range tests {
		if got := Caption(tt.sides, tt.fraction, tt.points); got != tt.want {
			t.Errorf("Caption(%d, %v, %d) = %q, want %q", tt.sides, tt.fraction, tt.points, got, tt.want)
		}
	}
}

func TestDrawCaption(t *testing.T) {
	face, err := NewCaptionFace(14)
	if err != nil {
		t.Fatalf("NewCaptionFace() = %v", err)
	}
	if face == nil {
		t.Fatal("NewCaptionFace() returned nil face")
	}

	dc := gg.NewContext(240, 40)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	DrawCaption(dc, face, Caption(3, 0.5, 100), DefaultStyle())

	img := dc.Image()
	for y := 0; y < 40; y++ {
		for x := 0; x < 240; x++ {
			if !isWhite(img, x, y) {
				return
			}
		}
	}
	t.Error("caption left the canvas blank")
}
