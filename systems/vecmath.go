package systems

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// unit returns v scaled to length 1, or the zero vector.
func unit(v dmath.Vec2) dmath.Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return dmath.Vec2{}
	}
	return v.MulScalar(1 / m)
}

func fromAngle(deg float64) dmath.Vec2 {
	rad := deg * math.Pi / 180
	return dmath.NewVec2(math.Cos(rad), math.Sin(rad))
}

func bearing(from, to dmath.Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

func dist(a, b dmath.Vec2) float64 {
	return a.Sub(b).Magnitude()
}

// segmentHitsRect returns the distance along the ray at which it enters the
// rectangle, if it does so within length.
func segmentHitsRect(origin, dir dmath.Vec2, length, x, y, w, h float64) (float64, bool) {
	tMin, tMax := 0.0, length
	for _, axis := range [2]struct{ o, d, lo, hi float64 }{
		{origin.X, dir.X, x, x + w},
		{origin.Y, dir.Y, y, y + h},
	} {
		if axis.d == 0 {
			if axis.o < axis.lo || axis.o > axis.hi {
				return 0, false
			}
			continue
		}
		t1 := (axis.lo - axis.o) / axis.d
		t2 := (axis.hi - axis.o) / axis.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
