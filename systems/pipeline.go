package systems

import (
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// System advances one concern of the world by a tick.
type System func(w donburi.World)

// pipeline is the fixed per-tick order. The resolver reads last tick's
// positions and frames, so it runs before either state machine; the
// encounter cleans up after everything has moved.
var pipeline = []System{
	UpdateRound,
	WithRoundActive(UpdateCombat),
	WithRoundActive(UpdatePlayer),
	WithRoundActive(UpdateEnemies),
	WithRoundActive(UpdatePhysics),
	WithRoundActive(UpdateCollisions),
	WithRoundActive(UpdateObjects),
	WithRoundActive(UpdateAnimations),
	WithRoundActive(UpdateSoundCues),
	WithRoundActive(UpdateEncounter),
}

// Tick runs every system once, in order.
func Tick(w donburi.World) {
	for _, s := range pipeline {
		s(w)
	}
}

// WithRoundActive skips system unless the round is being played. Worlds
// without a round always run it.
func WithRoundActive(system System) System {
	return func(w donburi.World) {
		if rd, ok := round(w); ok && rd.State != cfg.RoundActive {
			return
		}
		system(w)
	}
}

func round(w donburi.World) (*components.RoundData, bool) {
	entry, ok := components.Round.First(w)
	if !ok {
		return nil, false
	}
	return components.Round.Get(entry), true
}

var noInput components.PlayerInputData

// input returns this tick's input snapshot, or an idle one.
func input(w donburi.World) *components.PlayerInputData {
	entry, ok := components.PlayerInput.First(w)
	if !ok {
		noInput = components.PlayerInputData{}
		return &noInput
	}
	return components.PlayerInput.Get(entry)
}

func random(w donburi.World) components.RandomData {
	entry, ok := components.Random.First(w)
	if !ok {
		return components.NewRandom(0)
	}
	return *components.Random.Get(entry)
}

// collect snapshots the entries of c so callers can change their
// components while walking them.
func collect(w donburi.World, c donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(c)).Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func markStruck(e *donburi.Entry, ev components.DamageEventData) {
	if e.HasComponent(components.DamageEvent) {
		*components.DamageEvent.Get(e) = ev
		return
	}
	donburi.Add(e, components.DamageEvent, &ev)
}

// takeStruck consumes the actor's strike for this tick, if any.
func takeStruck(e *donburi.Entry) (components.DamageEventData, bool) {
	if !e.HasComponent(components.DamageEvent) {
		return components.DamageEventData{}, false
	}
	ev := *components.DamageEvent.Get(e)
	donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	return ev, true
}
