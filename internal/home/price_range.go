package home

import (
	"fmt"
	"strings"

	"github.com/jask/shopfront/internal/catalog"
)

// PriceRange is the dual-handle price slider. A zero handle is unset and
// reads as the edge of the domain. Every accepted change keeps min <= max.
type PriceRange struct {
	min int
	max int
}

// Min returns the raw min handle; 0 means unset.
func (r PriceRange) Min() int { return r.min }

// Max returns the raw max handle; 0 means unset.
func (r PriceRange) Max() int { return r.max }

// Low is the effective lower bound.
func (r PriceRange) Low() int {
	if r.min == 0 {
		return catalog.PriceFloor
	}
	return r.min
}

// High is the effective upper bound.
func (r PriceRange) High() int {
	if r.max == 0 {
		return catalog.PriceCeil
	}
	return r.max
}

// SetMin moves the min handle to v. It reports false and keeps the old value
// when v is off the slider grid or would pass the max handle.
func (r *PriceRange) SetMin(v int) bool {
	if !onGrid(v) || v > r.High() {
		return false
	}
	r.min = v
	return true
}

// SetMax moves the max handle to v. It reports false and keeps the old value
// when v is off the slider grid or would pass the min handle.
func (r *PriceRange) SetMax(v int) bool {
	if !onGrid(v) || v < r.Low() {
		return false
	}
	r.max = v
	return true
}

// NudgeMin moves the min handle by steps grid steps.
func (r *PriceRange) NudgeMin(steps int) bool {
	return r.SetMin(r.Low() + steps*catalog.PriceStep)
}

// NudgeMax moves the max handle by steps grid steps.
func (r *PriceRange) NudgeMax(steps int) bool {
	return r.SetMax(r.High() + steps*catalog.PriceStep)
}

func (r *PriceRange) Reset() { *r = PriceRange{} }

// Label renders the range the way the panel header shows it.
func (r PriceRange) Label(currency string) string {
	return fmt.Sprintf("%s%d - %s%d", currency, r.Low(), currency, r.High())
}

// Track draws the slider as width cells, marking the active span.
func (r PriceRange) Track(width int) string {
	if width < 2 {
		width = 2
	}
	span := catalog.PriceCeil - catalog.PriceFloor
	lo := (r.Low() - catalog.PriceFloor) * (width - 1) / span
	hi := (r.High() - catalog.PriceFloor) * (width - 1) / span
	var b strings.Builder
	b.Grow(width * 3)
	for i := 0; i < width; i++ {
		switch {
		case i == lo || i == hi:
			b.WriteString("●")
		case i > lo && i < hi:
			b.WriteString("━")
		default:
			b.WriteString("─")
		}
	}
	return b.String()
}

func onGrid(v int) bool {
	return v >= catalog.PriceFloor && v <= catalog.PriceCeil && (v-catalog.PriceFloor)%catalog.PriceStep == 0
}
