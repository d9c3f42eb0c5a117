// pkg/geom/zone.go
package geom

// Rect — прямоугольник с координатами углов (Min включительно, Max включительно).
type Rect struct {
	Min, Max Point
}

// Contains сообщает, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Zone — зона строительства: объединение прямоугольников. Пустая зона не
// содержит ни одной точки.
type Zone struct {
	rects []Rect
}

// NewZone собирает зону из набора прямоугольников.
func NewZone(rects ...Rect) Zone {
	z := Zone{rects: make([]Rect, len(rects))}
	copy(z.rects, rects)
	return z
}

// Contains сообщает, попадает ли точка хотя бы в один прямоугольник зоны.
func (z Zone) Contains(p Point) bool {
	for _, r := range z.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
