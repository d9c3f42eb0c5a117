// pkg/geom/point.go
package geom

import "math"

// Point представляет точку на плоскости. Значимый тип, копируется свободно.
type Point struct {
	X, Y float64
}

// Dist возвращает евклидово расстояние до точки other.
func (p Point) Dist(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add возвращает сумму точки и вектора (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Lerp возвращает точку на отрезке [p, other] на доле t от его длины.
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}
