package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

// mousePointerID is the pointer ID of the mouse. Touch IDs are shifted
// past it.
const mousePointerID = 0

// rawInput is one Update's worth of device state.
type rawInput struct {
	FirePressed  bool // edges
	FireReleased bool

	Left, Right, Up, Down bool // levels

	Pause   bool
	Restart bool
	Quit    bool

	Pointers []core.PointerEvent
}

// buildFrame turns device state into an input frame. The latch makes a
// held fire key shoot once.
func buildFrame(raw rawInput, latch *skyshooter.FireLatch) core.InputFrame {
	frame := core.NewInputFrame()

	if raw.FirePressed && latch.Press() {
		frame.Set(core.ActionFire)
	}
	if raw.FireReleased {
		latch.Release()
	}

	if raw.Left {
		frame.Set(core.ActionLeft)
	}
	if raw.Right {
		frame.Set(core.ActionRight)
	}
	if raw.Up {
		frame.Set(core.ActionUp)
	}
	if raw.Down {
		frame.Set(core.ActionDown)
	}
	if raw.Pause {
		frame.Set(core.ActionPause)
	}
	if raw.Restart {
		frame.Set(core.ActionRestart)
	}
	if raw.Quit {
		frame.Set(core.ActionQuit)
	}

	for _, ev := range raw.Pointers {
		frame.AddPointer(ev)
	}
	return frame
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput polls Ebiten. Cursor and touch positions are already in
// field coordinates because Layout returns the field size.
func (p *Presenter) readInput() rawInput {
	raw := rawInput{
		FirePressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		FireReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Left:         anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:        anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:           anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:         anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Pause:        anyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		Restart:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	mx, my := ebiten.CursorPosition()
	mouse := func(kind core.PointerKind) core.PointerEvent {
		return core.PointerEvent{ID: mousePointerID, Kind: kind, X: float64(mx), Y: float64(my)}
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		raw.Pointers = append(raw.Pointers, mouse(core.PointerDown))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		raw.Pointers = append(raw.Pointers, mouse(core.PointerUp))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		raw.Pointers = append(raw.Pointers, mouse(core.PointerMove))
	}

	p.justPressed = inpututil.AppendJustPressedTouchIDs(p.justPressed[:0])
	for _, id := range p.justPressed {
		x, y := ebiten.TouchPosition(id)
		raw.Pointers = append(raw.Pointers, touchEvent(id, core.PointerDown, x, y))
	}

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		if inpututil.IsTouchJustReleased(id) || inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		raw.Pointers = append(raw.Pointers, touchEvent(id, core.PointerMove, x, y))
	}

	p.justReleased = inpututil.AppendJustReleasedTouchIDs(p.justReleased[:0])
	for _, id := range p.justReleased {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		raw.Pointers = append(raw.Pointers, touchEvent(id, core.PointerUp, x, y))
	}

	return raw
}

func touchEvent(id ebiten.TouchID, kind core.PointerKind, x, y int) core.PointerEvent {
	return core.PointerEvent{
		ID:   int(id) + mousePointerID + 1,
		Kind: kind,
		X:    float64(x),
		Y:    float64(y),
	}
}
