package combat

import (
	"testing"

	cfg "github.com/automoto/ghostblade/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allAttacks() []Attack {
	return []Attack{
		Light{},
		Heavy{},
		RepeatHeavy{},
		GroundDash{TicksRemaining: 10, Direction: 1},
		AirDash{TicksRemaining: 10, Direction: -1},
	}
}

func TestDamage(t *testing.T) {
	assert.Equal(t, 1, Damage(Light{}))
	assert.Equal(t, 2, Damage(Heavy{}))
	assert.Equal(t, 2, Damage(RepeatHeavy{}))
	assert.Equal(t, 0, Damage(GroundDash{}))
	assert.Equal(t, 0, Damage(AirDash{}))
}

func TestEveryAttackHasATableEntry(t *testing.T) {
	for _, a := range allAttacks() {
		_, ok := cfg.Attacks[a.Kind()]
		assert.True(t, ok, "%s", a.Kind())
	}
}

func TestLightHitboxWindows(t *testing.T) {
	tests := []struct {
		frame int
		want  bool
		x     float64
	}{
		{frame: 5, want: false},
		{frame: 6, want: true, x: 41},
		{frame: 9, want: true, x: 41},
		{frame: 10, want: false},
		{frame: 13, want: true, x: 9},
		{frame: 15, want: true, x: 9},
		{frame: 16, want: false},
	}

	for _, tt := range tests {
		box, ok := ActiveHitbox(Light{}, tt.frame, false)
		assert.Equal(t, tt.want, ok, "frame %d", tt.frame)
		if tt.want {
			assert.Equal(t, tt.x, box.X, "frame %d", tt.frame)
		}
	}
}

func TestMirroringLaw(t *testing.T) {
	width := float64(cfg.Player.FrameWidth)
	for _, a := range allAttacks() {
		for frame := 0; frame < 20; frame++ {
			right, okR := ActiveHitbox(a, frame, false)
			left, okL := ActiveHitbox(a, frame, true)
			require.Equal(t, okR, okL)
			if !okR {
				continue
			}
			assert.Equal(t, width-right.X-right.W, left.X, "%s frame %d", a.Kind(), frame)
			assert.Equal(t, right.Y, left.Y)
			assert.Equal(t, right.W, left.W)
			assert.Equal(t, right.H, left.H)
		}
	}
}

func TestWorldHitboxTranslates(t *testing.T) {
	box, ok := WorldHitbox(Heavy{}, 12, false, 100, 50)
	require.True(t, ok)
	assert.Equal(t, 134.0, box.X)
	assert.Equal(t, 54.0, box.Y)

	_, ok = WorldHitbox(Heavy{}, 11, false, 100, 50)
	assert.False(t, ok)
}

func TestTickConsumesDashOnly(t *testing.T) {
	a := Tick(GroundDash{TicksRemaining: 3, Direction: -1})
	ticks, dir, ok := Dash(a)
	require.True(t, ok)
	assert.Equal(t, 2, ticks)
	assert.Equal(t, -1.0, dir)

	assert.Equal(t, Attack(Heavy{}), Tick(Heavy{}))
	_, _, ok = Dash(Light{})
	assert.False(t, ok)
}
