// component/movement.go
package component

import "math"

// Position — позиция в мировых координатах (плоскость XY)
type Position struct {
	X, Y float64
}

func (p Position) Add(o Position) Position  { return Position{p.X + o.X, p.Y + o.Y} }
func (p Position) Sub(o Position) Position  { return Position{p.X - o.X, p.Y - o.Y} }
func (p Position) Scale(k float64) Position { return Position{p.X * k, p.Y * k} }

func (p Position) Len() float64 { return math.Hypot(p.X, p.Y) }

func (p Position) Dist(o Position) float64 { return p.Sub(o).Len() }

// Normalized returns the unit vector, or zero for a zero vector.
func (p Position) Normalized() Position {
	l := p.Len()
	if l == 0 {
		return Position{}
	}
	return p.Scale(1 / l)
}

// FromAngle returns the point at distance r in direction angle (radians).
func FromAngle(angle, r float64) Position {
	return Position{math.Cos(angle) * r, math.Sin(angle) * r}
}
