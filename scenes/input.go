package scenes

import (
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding maps an action to the keys and buttons that trigger it.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Debug                  bool // only bound with debug keys enabled
}

var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionAttack1: {
		Keys:                   []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionAttack2: {
		Keys:                   []ebiten.Key{ebiten.KeyX, ebiten.KeyK},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionDebugStrike: {
		Keys:  []ebiten.Key{ebiten.KeyH},
		Debug: true,
	},
	cfg.ActionDebugHitboxes: {
		Keys:  []ebiten.Key{ebiten.KeyF1},
		Debug: true,
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// sampleInput rolls the snapshot over and records this frame's keyboard
// and gamepad state.
func sampleInput(in *components.PlayerInputData) {
	in.Next()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		if binding.Debug && !cfg.Debug.Enabled {
			continue
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	if in.Current[cfg.ActionMoveLeft] {
		in.Axis--
	}
	if in.Current[cfg.ActionMoveRight] {
		in.Axis++
	}
	if in.Axis == 0 {
		in.Axis = analogAxis()
	}
}

// analogAxis reads the left stick of the first gamepad pushed past the
// deadzone.
func analogAxis() float64 {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -cfg.AnalogDeadzone || h > cfg.AnalogDeadzone {
			return h
		}
	}
	return 0
}
