package geometry

import "math"

// Approximate simplifies the closed contour with the Douglas-Peucker
// algorithm. Every removed point lies within epsilon of the resulting polygon.
//
// The contour is split at its first point and the point farthest from it;
// both chains are simplified independently and joined. A final pass drops
// vertices that sit within epsilon of the segment joining their neighbours,
// which removes the artificial vertex the split point would otherwise leave
// in the middle of an edge.
func (c Contour) Approximate(epsilon float64) Contour {
	n := len(c)
	if n <= 2 {
		return append(Contour(nil), c...)
	}

	far := 0
	best := -1.0
	for i := 1; i < n; i++ {
		if d := distance(c[0], c[i]); d > best {
			best = d
			far = i
		}
	}
	if best == 0 {
		return Contour{c[0]}
	}

	first := simplifyOpen(c[:far+1], epsilon)
	second := make(Contour, 0, n-far+1)
	second = append(second, c[far:]...)
	second = append(second, c[0])
	second = simplifyOpen(second, epsilon)

	out := make(Contour, 0, len(first)+len(second))
	out = append(out, first[:len(first)-1]...)
	out = append(out, second[:len(second)-1]...)

	return dropFlatVertices(out, epsilon)
}

// simplifyOpen runs Douglas-Peucker on an open polyline, keeping both endpoints.
func simplifyOpen(points Contour, epsilon float64) Contour {
	if len(points) <= 2 {
		return append(Contour(nil), points...)
	}

	chord := segment{a: points[0], b: points[len(points)-1]}
	dmax := 0.0
	index := 0
	for i := 1; i < len(points)-1; i++ {
		if d := chord.distance(points[i]); d > dmax {
			dmax = d
			index = i
		}
	}

	if dmax <= epsilon {
		return Contour{points[0], points[len(points)-1]}
	}

	left := simplifyOpen(points[:index+1], epsilon)
	right := simplifyOpen(points[index:], epsilon)
	return append(left[:len(left)-1], right...)
}

// dropFlatVertices removes vertices closer than epsilon to the segment
// joining their neighbours until none remain or a triangle is left.
func dropFlatVertices(poly Contour, epsilon float64) Contour {
	for len(poly) > 3 {
		removed := false
		for i := 0; i < len(poly); i++ {
			prev := poly[(i-1+len(poly))%len(poly)]
			next := poly[(i+1)%len(poly)]
			if (segment{a: prev, b: next}).distance(poly[i]) <= epsilon {
				poly = append(poly[:i:i], poly[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return poly
}

type segment struct {
	a, b Point
}

// distance returns the distance between p and the closest point of the segment.
func (s segment) distance(p Point) float64 {
	abx := float64(s.b.X - s.a.X)
	aby := float64(s.b.Y - s.a.Y)
	apx := float64(p.X - s.a.X)
	apy := float64(p.Y - s.a.Y)

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(apx, apy)
	}

	t := (apx*abx + apy*aby) / lenSq
	switch {
	case t <= 0:
		return math.Hypot(apx, apy)
	case t >= 1:
		return math.Hypot(float64(p.X-s.b.X), float64(p.Y-s.b.Y))
	}
	return math.Abs(apx*aby-apy*abx) / math.Sqrt(lenSq)
}
