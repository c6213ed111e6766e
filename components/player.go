package components

import (
	"github.com/automoto/ghostblade/combat"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector        // facing; X is -1 or 1
	Attack    combat.Attack // nil when no attack is held
	Hitable   bool
}

var Player = donburi.NewComponentType[PlayerData]()
