package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// overlapping returns the entries whose collision rectangles intersect obj.
// The space check is cell based, so candidates are filtered by their bounds.
func overlapping(obj *components.ObjectData, resolvTags ...string) []*donburi.Entry {
	if obj == nil || obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}
	seen := map[*resolv.Object]bool{}
	var out []*donburi.Entry
	for _, o := range check.Objects {
		if o == obj.Object || seen[o] || !obj.Overlaps(o) {
			continue
		}
		seen[o] = true
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// moveAndCollide moves obj by (dx, dy), one axis at a time, stopping flush
// against solid objects.
func moveAndCollide(obj *components.ObjectData, dx, dy float64) {
	if dx != 0 {
		obj.X += sweep(obj, dx, true)
	}
	if dy != 0 {
		obj.Y += sweep(obj, dy, false)
	}
	obj.Update()
}

func sweep(obj *components.ObjectData, delta float64, horizontal bool) float64 {
	if obj.Space == nil {
		return delta
	}
	var check *resolv.Collision
	if horizontal {
		check = obj.Check(delta, 0, tags.ResolvSolid)
	} else {
		check = obj.Check(0, delta, tags.ResolvSolid)
	}
	if check == nil {
		return delta
	}

	const eps = 0.001
	allowed := delta
	for _, o := range check.Objects {
		if o == obj.Object {
			continue
		}
		// near edge of obj, far edge and extent of o along the movement axis
		var lo, hi, oLo, oHi, pLo, pHi, opLo, opHi float64
		if horizontal {
			lo, hi, oLo, oHi = obj.X, obj.X+obj.W, o.X, o.X+o.W
			pLo, pHi, opLo, opHi = obj.Y, obj.Y+obj.H, o.Y, o.Y+o.H
		} else {
			lo, hi, oLo, oHi = obj.Y, obj.Y+obj.H, o.Y, o.Y+o.H
			pLo, pHi, opLo, opHi = obj.X, obj.X+obj.W, o.X, o.X+o.W
		}
		if pLo >= opHi || opLo >= pHi {
			continue
		}
		switch {
		case delta > 0 && oLo >= hi-eps:
			allowed = min(allowed, max(oLo-hi, 0))
		case delta < 0 && oHi <= lo+eps:
			allowed = max(allowed, min(oHi-lo, 0))
		}
	}
	return allowed
}
