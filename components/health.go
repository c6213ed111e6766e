package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Drain lowers health by n, never below zero.
func (h *HealthData) Drain(n int) {
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
}

// Fraction is the remaining share of Max in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
