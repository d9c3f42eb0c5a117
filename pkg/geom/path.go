// pkg/geom/path.go
package geom

import "errors"

// ErrInvalidPath возвращается конструктором пути, если задано меньше двух
// путевых точек или все сегменты имеют нулевую длину.
var ErrInvalidPath = errors.New("geom: path requires at least two distinct waypoints")

// Path — неизменяемая последовательность путевых точек, по которой враги
// движутся от входа к выходу. N точек задают N-1 сегментов; сегменты
// нумеруются с единицы.
type Path struct {
	waypoints []Point
	lengths   []float64 // длина каждого сегмента, индекс 0 соответствует сегменту 1
	total     float64
}

// NewPath строит путь по списку путевых точек. Срез копируется, поэтому
// последующие изменения аргумента на путь не влияют.
func NewPath(waypoints []Point) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, ErrInvalidPath
	}

	pts := make([]Point, len(waypoints))
	copy(pts, waypoints)

	lengths := make([]float64, len(pts)-1)
	total := 0.0
	for i := 0; i < len(pts)-1; i++ {
		lengths[i] = pts[i].Dist(pts[i+1])
		total += lengths[i]
	}
	if total == 0 {
		return nil, ErrInvalidPath
	}

	return &Path{waypoints: pts, lengths: lengths, total: total}, nil
}

// SegmentCount возвращает число сегментов пути.
func (p *Path) SegmentCount() int {
	return len(p.lengths)
}

// Segment возвращает концы и длину сегмента с номером index (нумерация с 1).
// Выход за границы — ошибка программиста, а не данных.
func (p *Path) Segment(index int) (from, to Point, length float64) {
	if index < 1 || index > len(p.lengths) {
		panic("geom: segment index out of range")
	}
	return p.waypoints[index-1], p.waypoints[index], p.lengths[index-1]
}

// Start возвращает первую путевую точку — точку появления врагов.
func (p *Path) Start() Point {
	return p.waypoints[0]
}

// End возвращает последнюю путевую точку — цель врагов.
func (p *Path) End() Point {
	return p.waypoints[len(p.waypoints)-1]
}

// TotalLength возвращает суммарную длину всех сегментов.
func (p *Path) TotalLength() float64 {
	return p.total
}
