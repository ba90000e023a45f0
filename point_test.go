package chaosgame

import "testing"

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, -4), Pt(10, 2)
	if got := p.Add(q); got != Pt(13, -2) {
		t.Errorf("Add = %v, want (13, -2)", got)
	}
	if got := q.Sub(p); got != Pt(7, 6) {
		t.Errorf("Sub = %v, want (7, 6)", got)
	}
	if x, y := p.Float(); x != 3 || y != -4 {
		t.Errorf("Float = (%v, %v), want (3, -4)", x, y)
	}
}

func TestPointLerp(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		t    float64
		want Point
	}{
		{"zero", Pt(10, 10), Pt(20, 30), 0, Pt(10, 10)},
		{"one", Pt(10, 10), Pt(20, 30), 1, Pt(20, 30)},
		{"half", Pt(0, 0), Pt(10, 20), 0.5, Pt(5, 10)},
		{"truncates down", Pt(0, 0), Pt(5, 7), 0.5, Pt(2, 3)},
		{"truncates toward zero", Pt(0, 0), Pt(-5, -7), 0.5, Pt(-2, -3)},
		{"toward smaller", Pt(10, 10), Pt(5, 5), 0.5, Pt(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Lerp(tt.q, tt.t); got != tt.want {
				t.Errorf("%v.Lerp(%v, %v) = %v, want %v", tt.p, tt.q, tt.t, got, tt.want)
			}
		})
	}
}
