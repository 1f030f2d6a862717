package domain

import "math"

// Vec2 は2次元のベクトル・座標を表す値オブジェクトです。
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Dist は2点間のユークリッド距離を返します。
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect は左上座標とサイズで表す矩形です。
type Rect struct {
	X, Y float64
	W, H float64
}

// Center は矩形の中心座標を返します。
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects は2つの矩形が重なっているかを返します。辺が接しているだけの場合は重ならない扱いです。
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ClampInside は矩形が bounds の内側に収まるように位置を補正した矩形を返します。
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = clamp(r.X, bounds.X, bounds.X+bounds.W-r.W)
	r.Y = clamp(r.Y, bounds.Y, bounds.Y+bounds.H-r.H)
	return r
}

// Outside は矩形が bounds と完全に重ならない位置にあるかを返します。
func (r Rect) Outside(bounds Rect) bool {
	return r.X+r.W < bounds.X || r.X > bounds.X+bounds.W ||
		r.Y+r.H < bounds.Y || r.Y > bounds.Y+bounds.H
}

// CenteredAt は中心が c になるように移動した矩形を返します。
func (r Rect) CenteredAt(c Vec2) Rect {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
	return r
}

func clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
