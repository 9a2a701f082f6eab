package render

import (
	"image/color"
	"testing"

	"github.com/phanxgames/lizard"
)

func TestAppendPolygonFan(t *testing.T) {
	pts := []lizard.Vec2{{0, 0}, {10, 0}, {12, 8}, {5, 12}, {-2, 8}}
	col := lizard.Color{R: 0.2, G: 0.4, B: 0.6, A: 0.35}

	verts, inds := appendPolygonFan(nil, nil, pts, col)
	if len(verts) != 5 {
		t.Fatalf("verts = %d, want 5", len(verts))
	}
	wantInds := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(inds) != len(wantInds) {
		t.Fatalf("inds = %v, want %v", inds, wantInds)
	}
	for i := range wantInds {
		if inds[i] != wantInds[i] {
			t.Fatalf("inds = %v, want %v", inds, wantInds)
		}
	}
	for i, v := range verts {
		if v.DstX != float32(pts[i].X) || v.DstY != float32(pts[i].Y) {
			t.Errorf("vert %d at (%v,%v), want %+v", i, v.DstX, v.DstY, pts[i])
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Errorf("vert %d samples (%v,%v), want the white pixel", i, v.SrcX, v.SrcY)
		}
		if v.ColorA != float32(0.35) || v.ColorG != float32(0.4) {
			t.Errorf("vert %d color = %v %v", i, v.ColorG, v.ColorA)
		}
	}
}

func TestAppendPolygonFan_Appends(t *testing.T) {
	tri := []lizard.Vec2{{0, 0}, {1, 0}, {0, 1}}
	verts, inds := appendPolygonFan(nil, nil, tri, lizard.ColorBlack)
	verts, inds = appendPolygonFan(verts, inds, tri, lizard.ColorBlack)
	if len(verts) != 6 {
		t.Fatalf("verts = %d, want 6", len(verts))
	}
	if inds[3] != 3 || inds[4] != 4 || inds[5] != 5 {
		t.Errorf("second fan indices = %v, want offset by 3", inds[3:])
	}
}

func TestAppendPolygonFan_Degenerate(t *testing.T) {
	for n := 0; n < 3; n++ {
		pts := make([]lizard.Vec2, n)
		verts, inds := appendPolygonFan(nil, nil, pts, lizard.ColorBlack)
		if len(verts) != 0 || len(inds) != 0 {
			t.Errorf("%d points produced %d verts %d inds", n, len(verts), len(inds))
		}
	}
}

func TestToNRGBA(t *testing.T) {
	tests := []struct {
		in   lizard.Color
		want color.NRGBA
	}{
		{lizard.Color{R: 1, G: 0, B: 0, A: 1}, color.NRGBA{255, 0, 0, 255}},
		{lizard.ColorBlack, color.NRGBA{0, 0, 0, 255}},
		{lizard.Color{R: 1, G: 1, B: 1, A: 0}, color.NRGBA{255, 255, 255, 0}},
	}
	for _, tt := range tests {
		if got := toNRGBA(tt.in); got != tt.want {
			t.Errorf("toNRGBA(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
