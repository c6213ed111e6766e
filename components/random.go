package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RandomData is the world's only source of randomness (singleton
// component), seeded when the round is built.
type RandomData struct {
	*rand.Rand
}

func NewRandom(seed uint64) RandomData {
	return RandomData{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var Random = donburi.NewComponentType[RandomData]()
