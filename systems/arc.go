package systems

import "github.com/tanema/gween/ease"

// ArcCurve maps normalized flight time to normalized height: 0 at both ends,
// 1 at the apex.
func ArcCurve(t float64) float64 {
	switch {
	case t <= 0 || t >= 1:
		return 0
	case t < 0.5:
		return float64(ease.OutQuad(float32(t), 0, 1, 0.5))
	default:
		return float64(ease.InQuad(float32(t-0.5), 1, -1, 0.5))
	}
}
