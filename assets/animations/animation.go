package animations

// Clip is one strip of frames on a sprite sheet.
type Clip struct {
	X, Y   int // top-left of the first frame
	W, H   int // size of a single frame
	Frames int
	Speed  int // ticks per frame

	// PivotX and PivotY shift the frame against the actor position.
	PivotX, PivotY int
}

type Animation struct {
	clip    Clip
	elapsed int
	frame   int
	Playing bool
}

func (a *Animation) Update() {
	if !a.Playing || a.clip.Frames <= 0 || a.clip.Speed <= 0 {
		return
	}
	a.elapsed = (a.elapsed + 1) % a.clip.Speed
	if a.elapsed == 0 {
		a.frame = (a.frame + 1) % a.clip.Frames
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// IsFinished is level-triggered: it stays true for as long as the last frame
// is showing, and a looping clip reports it again on every pass.
func (a *Animation) IsFinished() bool {
	return a.frame == a.clip.Frames-1
}

// SetClip swaps the strip and resets the tick counter. The frame index is
// kept; call Play to start the new clip from its first frame.
func (a *Animation) SetClip(c Clip) {
	a.clip = c
	a.elapsed = 0
}

func (a *Animation) SetFrame(n int) {
	a.frame = n
}

func (a *Animation) Play() {
	a.Playing = true
	a.frame = 0
}

func (a *Animation) Clip() Clip {
	return a.clip
}

// Source returns the sheet region of the current frame.
func (a *Animation) Source() (x, y, w, h int) {
	return a.clip.X + a.frame*a.clip.W, a.clip.Y, a.clip.W, a.clip.H
}

// Place returns where the current frame's top-left corner goes for an
// actor at (x, y).
func (a *Animation) Place(x, y float64) (float64, float64) {
	return x - float64(a.clip.PivotX), y - float64(a.clip.PivotY)
}

func NewAnimation(c Clip) *Animation {
	return &Animation{
		clip:    c,
		Playing: true,
	}
}
