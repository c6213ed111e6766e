package components

import "github.com/yohamta/donburi"

// DamageEventData marks an actor struck this tick. Health has already been
// removed by whoever added it; the state machine consumes the event and
// applies the knockback.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
