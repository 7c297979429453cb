package combat

import (
	"math"
	"testing"
)

func TestCircleOverlap(t *testing.T) {
	cases := []struct {
		name                   string
		ax, ay, ar, bx, by, br float64
		want                   bool
	}{
		{"overlapping", 0, 0, 10, 5, 0, 10, true},
		{"touching edges", 0, 0, 5, 10, 0, 5, true},
		{"separated", 0, 0, 5, 11, 0, 5, false},
		{"contained", 0, 0, 20, 2, 2, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleOverlap(tc.ax, tc.ay, tc.ar, tc.bx, tc.by, tc.br); got != tc.want {
				t.Fatalf("CircleOverlap = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSegmentCircleOverlap(t *testing.T) {
	// Segment crossing the circle center.
	if !SegmentCircleOverlap(-10, 0, 10, 0, 0, 0, 3) {
		t.Fatalf("crossing segment should hit")
	}
	// Segment passing just outside the radius.
	if SegmentCircleOverlap(-10, 5, 10, 5, 0, 0, 3) {
		t.Fatalf("distant segment should miss")
	}
	// Degenerate segment falls back to a point test.
	if !SegmentCircleOverlap(1, 1, 1, 1, 0, 0, 2) {
		t.Fatalf("degenerate segment inside circle should hit")
	}
	// Endpoint proximity counts even when the infinite line would pass closer.
	if !SegmentCircleOverlap(0, 0, 4, 0, 6, 0, 2.5) {
		t.Fatalf("endpoint within radius should hit")
	}
}

func TestPointInOrientedRect(t *testing.T) {
	// Box extending 10 forward along +X, 4 wide.
	if !PointInOrientedRect(5, 1, 0, 0, 1, 0, 10, 4) {
		t.Fatalf("interior point should hit")
	}
	if PointInOrientedRect(-1, 0, 0, 0, 1, 0, 10, 4) {
		t.Fatalf("point behind origin should miss")
	}
	if PointInOrientedRect(5, 3, 0, 0, 1, 0, 10, 4) {
		t.Fatalf("point beyond half-width should miss")
	}
	// Rotated 90 degrees: forward is +Y.
	if !PointInOrientedRect(0, 5, 0, 0, 0, 1, 10, 4) {
		t.Fatalf("rotated interior point should hit")
	}
}

func TestPointInCone(t *testing.T) {
	halfAngle := math.Pi / 4
	if !PointInCone(5, 0, 0, 0, 1, 0, 10, halfAngle) {
		t.Fatalf("on-axis point should hit")
	}
	if !PointInCone(5, 4, 0, 0, 1, 0, 10, halfAngle) {
		t.Fatalf("point inside the sector should hit")
	}
	if PointInCone(0, 5, 0, 0, 1, 0, 10, halfAngle) {
		t.Fatalf("point at 90 degrees should miss a 45-degree cone")
	}
	if PointInCone(20, 0, 0, 0, 1, 0, 10, halfAngle) {
		t.Fatalf("point beyond radius should miss")
	}
	if !PointInCone(0, 0, 0, 0, 1, 0, 10, halfAngle) {
		t.Fatalf("cone apex should hit")
	}
}

func TestPointInRing(t *testing.T) {
	if !PointInRing(7, 0, 0, 0, 5, 10) {
		t.Fatalf("point inside annulus should hit")
	}
	if PointInRing(2, 0, 0, 0, 5, 10) {
		t.Fatalf("point inside the hole should miss")
	}
	if PointInRing(11, 0, 0, 0, 5, 10) {
		t.Fatalf("point outside should miss")
	}
}

func TestPointInArc(t *testing.T) {
	halfAngle := math.Pi / 3
	if !PointInArc(7, 0, 0, 0, 1, 0, 5, 10, halfAngle) {
		t.Fatalf("on-axis annulus point should hit")
	}
	if PointInArc(-7, 0, 0, 0, 1, 0, 5, 10, halfAngle) {
		t.Fatalf("point behind the attacker should miss")
	}
	if PointInArc(2, 0, 0, 0, 1, 0, 5, 10, halfAngle) {
		t.Fatalf("point inside the hole should miss")
	}
}
