package payments

import "math/rand"

func defaultDraw() float64 {
	return rand.Float64()
}
