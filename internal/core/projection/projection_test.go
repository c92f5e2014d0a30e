package projection

import (
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func testPalette(code int) color.RGBA {
	if code == 1 {
		return red
	}
	return color.RGBA{B: 0xff, A: 0xff}
}

func TestCorrectedDistanceCentreRay(t *testing.T) {
	for _, heading := range []float64{0, 1, math.Pi, 5.5} {
		if got := CorrectedDistance(heading, heading, 123.5); got != 123.5 {
			t.Errorf("Heading %v: expected raw distance for the centre ray, got %v", heading, got)
		}
	}
}

func TestCorrectedDistanceSymmetric(t *testing.T) {
	left := CorrectedDistance(0.1, 0.1-0.3, 100)
	right := CorrectedDistance(0.1, 0.1+0.3, 100)
	want := 100 * math.Cos(0.3)

	if math.Abs(left-want) > 1e-9 || math.Abs(right-want) > 1e-9 {
		t.Errorf("Expected %v on both sides, got %v and %v", want, left, right)
	}
}

func TestWallHeightMonotonic(t *testing.T) {
	p := New(DefaultConfig(), 1, testPalette)

	prev := p.WallHeight(64)
	for d := 65.0; d < 2000; d += 7 {
		h := p.WallHeight(d)
		if h >= prev {
			t.Fatalf("Expected height to shrink with distance, got %v at %v after %v", h, d, prev)
		}
		prev = h
	}
}

func TestWallHeightClamp(t *testing.T) {
	cfg := DefaultConfig()
	p := New(cfg, 1, testPalette)

	// 64*320/64 = 320 is exactly the maximum
	if h := p.WallHeight(64); h != cfg.MaxHeight {
		t.Errorf("Expected %v at the clamp boundary, got %v", cfg.MaxHeight, h)
	}

	for _, d := range []float64{0, -5, 1e-300, 10} {
		if h := p.WallHeight(d); h != cfg.MaxHeight {
			t.Errorf("Distance %v: expected clamped height %v, got %v", d, cfg.MaxHeight, h)
		}
	}

	if h := p.WallHeight(128); h != 160 {
		t.Errorf("Expected height 160 at distance 128, got %v", h)
	}
}

func TestProjectPlacement(t *testing.T) {
	cfg := DefaultConfig()
	p := New(cfg, 3, testPalette)

	hits := []raycast.Hit{
		{Angle: 0, Distance: 128, WallType: 1, Side: raycast.SideVertical},
		{Angle: 0, Distance: 256, WallType: 1, Side: raycast.SideHorizontal},
		{Angle: 0, Distance: 64, WallType: 2, Side: raycast.SideVertical},
	}
	slices := p.Project(0, hits)

	if len(slices) != 3 {
		t.Fatalf("Expected 3 slices, got %d", len(slices))
	}

	for i, s := range slices {
		if s.Column != i {
			t.Errorf("Slice %d: expected column %d, got %d", i, i, s.Column)
		}
		if want := cfg.LeftOffset + float64(i)*cfg.ColumnWidth; s.X != want {
			t.Errorf("Slice %d: expected x %v, got %v", i, want, s.X)
		}
		if mid := s.Top + s.Height/2; mid != cfg.CenterY {
			t.Errorf("Slice %d: expected vertical centre %v, got %v", i, cfg.CenterY, mid)
		}
		if s.Bottom() != s.Top+s.Height {
			t.Errorf("Slice %d: bottom does not match top + height", i)
		}
		if !s.Visible {
			t.Errorf("Slice %d: expected visible", i)
		}
	}

	if slices[0].Height != 160 || slices[0].Top != 80 {
		t.Errorf("Expected height 160 at top 80, got %v at %v", slices[0].Height, slices[0].Top)
	}
	if slices[2].Height != cfg.MaxHeight {
		t.Errorf("Expected clamped height, got %v", slices[2].Height)
	}
}

func TestProjectShading(t *testing.T) {
	p := New(DefaultConfig(), 2, testPalette)
	slices := p.Project(0, []raycast.Hit{
		{Distance: 100, WallType: 1, Side: raycast.SideVertical},
		{Distance: 100, WallType: 1, Side: raycast.SideHorizontal},
	})

	v, h := slices[0], slices[1]
	if v.Alpha != 0.9 || h.Alpha != 0.7 {
		t.Errorf("Expected alphas 0.9 / 0.7, got %v / %v", v.Alpha, h.Alpha)
	}
	if v.Base != red || h.Base != red {
		t.Errorf("Expected base color red, got %v / %v", v.Base, h.Base)
	}
	if v.Color.A <= h.Color.A {
		t.Errorf("Expected vertical hits to be more opaque, got %d vs %d", v.Color.A, h.Color.A)
	}
	if v.Color.A != 230 || h.Color.A != 179 {
		t.Errorf("Expected alpha bytes 230 / 179, got %d / %d", v.Color.A, h.Color.A)
	}

	vs, hs := v.Solid(), h.Solid()
	if vs.R <= hs.R {
		t.Errorf("Expected vertical solid shade to be lighter, got %d vs %d", vs.R, hs.R)
	}
	if vs.A != 0xff || vs.G != 0 || vs.B != 0 {
		t.Errorf("Expected an opaque pure red shade, got %v", vs)
	}
}

func TestProjectMissIsHidden(t *testing.T) {
	p := New(DefaultConfig(), 2, testPalette)
	slices := p.Project(0, []raycast.Hit{
		{Distance: raycast.NoHitDistance},
	})

	if slices[0].Visible {
		t.Error("Expected a missed ray to produce a hidden slice")
	}
	if slices[1].Visible || slices[1].Column != 1 {
		t.Errorf("Expected trailing slice to be hidden with its column set, got %+v", slices[1])
	}
}

func TestProjectReusesBuffer(t *testing.T) {
	p := New(DefaultConfig(), 1, testPalette)
	a := p.Project(0, []raycast.Hit{{Distance: 100, WallType: 1, Side: raycast.SideVertical}})
	b := p.Project(0, []raycast.Hit{{Distance: 200, WallType: 1, Side: raycast.SideVertical}})

	if &a[0] != &b[0] {
		t.Error("Expected the slice buffer to be reused")
	}
	if b[0].Height != 64*320.0/200 {
		t.Errorf("Expected height %v, got %v", 64*320.0/200, b[0].Height)
	}
}
