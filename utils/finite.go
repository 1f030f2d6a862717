package utils

import (
	"math"
)

// FiniteXY は座標がどちらも有限値かどうかを返します。
func FiniteXY(x, y float64) bool {
	return isFinite(x) && isFinite(y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
