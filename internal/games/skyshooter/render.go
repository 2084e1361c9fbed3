package skyshooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// Visual characters for rendering
const (
	AircraftBody   = '▓'
	AircraftNose   = '▲'
	TargetChar     = '▒'
	ProjectileChar = '•'
	JoystickRing   = '·'
	JoystickHandle = '◉'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Viewport maps the field onto a region of the character screen while
// keeping the field's proportions. Row 0 is left for the HUD and the field
// is framed by a one-cell border.
type Viewport struct {
	X, Y int // top-left inner cell
	W, H int // inner size in cells

	fieldW float64
	fieldH float64
}

// NewViewport fits a fieldW×fieldH field into a screenW×screenH screen.
func NewViewport(screenW, screenH int, fieldW, fieldH float64) Viewport {
	innerH := screenH - 3 // HUD row plus top and bottom border
	innerW := int(math.Round(float64(innerH) * fieldW / fieldH * cellAspect))
	if innerW > screenW-2 {
		innerW = screenW - 2
		innerH = int(math.Round(float64(innerW) * fieldH / fieldW / cellAspect))
	}

	return Viewport{
		X:      (screenW - innerW) / 2,
		Y:      2,
		W:      max(innerW, 0),
		H:      max(innerH, 0),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// Usable reports whether the viewport is large enough to draw into.
func (v Viewport) Usable() bool {
	return v.W >= 6 && v.H >= 6
}

// ToCell converts a field position to a screen cell.
func (v Viewport) ToCell(p core.Vec) (col, row int) {
	col = v.X + int(math.Floor(p.X/v.fieldW*float64(v.W)))
	row = v.Y + int(math.Floor(p.Y/v.fieldH*float64(v.H)))
	return col, row
}

// ToField converts the center of a screen cell to a field position.
// Cells outside the viewport map outside the field.
func (v Viewport) ToField(col, row int) core.Vec {
	if v.W == 0 || v.H == 0 {
		return core.Vec{}
	}
	return core.Vec{
		X: (float64(col-v.X) + 0.5) * v.fieldW / float64(v.W),
		Y: (float64(row-v.Y) + 0.5) * v.fieldH / float64(v.H),
	}
}

// inside reports whether a cell is within the inner field area.
func (v Viewport) inside(col, row int) bool {
	return col >= v.X && col < v.X+v.W && row >= v.Y && row < v.Y+v.H
}

// set draws a cell only if it falls inside the field area.
func (v Viewport) set(dst *core.Screen, col, row int, r rune, c core.Color) {
	if v.inside(col, row) {
		dst.SetColored(col, row, r, c)
	}
}

// fillBox draws the cells covered by a field-space box, at least one cell.
func (v Viewport) fillBox(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, y0 := v.ToCell(core.Vec{X: b.Center.X - b.HalfW, Y: b.Center.Y - b.HalfH})
	x1, y1 := v.ToCell(core.Vec{X: b.Center.X + b.HalfW, Y: b.Center.Y + b.HalfH})
	x1 = max(x1-1, x0)
	y1 = max(y1-1, y0)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			v.set(dst, col, row, r, c)
		}
	}
}

// RenderSnapshot draws a snapshot into the screen buffer.
func RenderSnapshot(dst *core.Screen, s Snapshot, paused bool) {
	dst.Clear()

	v := NewViewport(dst.Width(), dst.Height(), s.Field.Width, s.Field.Height)
	if !v.Usable() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	dst.DrawBox(core.NewRect(v.X-1, v.Y-1, v.W+2, v.H+2))
	drawJoystick(dst, v, s.Joystick)

	for _, t := range s.Targets {
		if !t.Alive {
			continue
		}
		v.fillBox(dst, core.Box{Center: core.Vec{X: t.X, Y: t.Y}, HalfW: t.HalfW, HalfH: t.HalfH}, TargetChar, core.ColorRed)
	}

	for _, p := range s.Projectiles {
		col, row := v.ToCell(core.Vec{X: p.X, Y: p.Y})
		v.set(dst, col, row, ProjectileChar, core.ColorBrightYellow)
	}

	a := s.Aircraft
	v.fillBox(dst, core.Box{Center: core.Vec{X: a.X, Y: a.Y}, HalfW: a.HalfW, HalfH: a.HalfH}, AircraftBody, core.ColorCyan)
	noseCol, noseRow := v.ToCell(core.Vec{X: a.X, Y: a.Y - a.HalfH})
	v.set(dst, noseCol, noseRow, AircraftNose, core.ColorBrightCyan)

	dst.DrawTextColored(v.X, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightYellow)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawJoystick draws the joystick base ring and handle.
func drawJoystick(dst *core.Screen, v Viewport, j JoystickSnapshot) {
	origin := core.Vec{X: j.OriginX, Y: j.OriginY}
	const steps = 48
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		p := origin.Add(core.Vec{X: math.Cos(a), Y: math.Sin(a)}.Scale(j.Radius))
		col, row := v.ToCell(p)
		v.set(dst, col, row, JoystickRing, core.ColorGray)
	}

	color := core.ColorWhite
	if j.Active {
		color = core.ColorBrightCyan
	}
	col, row := v.ToCell(core.Vec{X: j.HandleX, Y: j.HandleY})
	v.set(dst, col, row, JoystickHandle, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
