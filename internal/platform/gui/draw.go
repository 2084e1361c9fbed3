package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

var (
	backgroundColor = color.RGBA{12, 16, 32, 255}
	aircraftColor   = color.RGBA{80, 200, 255, 255}
	targetColor     = color.RGBA{230, 70, 60, 255}
	projectileColor = color.RGBA{255, 230, 90, 255}
	ringColor       = color.RGBA{160, 160, 160, 180}
	handleColor     = color.RGBA{220, 220, 220, 140}
	activeColor     = color.RGBA{120, 230, 255, 200}
	overlayColor    = color.RGBA{0, 0, 0, 160}
	hudColor        = color.White
)

// drawSnapshot renders a snapshot onto screen in field coordinates.
func drawSnapshot(screen *ebiten.Image, s skyshooter.Snapshot, paused bool, face text.Face) {
	screen.Fill(backgroundColor)

	for _, t := range s.Targets {
		if !t.Alive {
			continue
		}
		fillBox(screen, t, targetColor)
	}

	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.HalfW), projectileColor, true)
	}

	a := s.Aircraft
	fillBox(screen, a, aircraftColor)
	// Nose
	vector.StrokeLine(screen, float32(a.X), float32(a.Y-a.HalfH), float32(a.X), float32(a.Y-a.HalfH-8), 4, aircraftColor, true)

	drawJoystick(screen, s.Joystick)

	drawText(screen, face, fmt.Sprintf("Score: %d", s.Score), 8, 8)

	if paused {
		vector.DrawFilledRect(screen, 0, 0, float32(s.Field.Width), float32(s.Field.Height), overlayColor, false)
		drawText(screen, face, "PAUSED - press P to resume", s.Field.Width/2-91, s.Field.Height/2)
	}
}

func fillBox(screen *ebiten.Image, e skyshooter.EntitySnapshot, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(e.X-e.HalfW), float32(e.Y-e.HalfH),
		float32(2*e.HalfW), float32(2*e.HalfH),
		clr, true)
}

func drawJoystick(screen *ebiten.Image, j skyshooter.JoystickSnapshot) {
	vector.StrokeCircle(screen, float32(j.OriginX), float32(j.OriginY), float32(j.Radius), 2, ringColor, true)

	clr := handleColor
	if j.Active {
		clr = activeColor
	}
	vector.DrawFilledCircle(screen, float32(j.HandleX), float32(j.HandleY), float32(j.HandleRadius), clr, true)
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, face, op)
}
