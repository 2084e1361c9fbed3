// Package gui runs the shooter in a desktop or mobile window with Ebiten.
// The logical screen is the field itself, so cursor and touch positions
// need no conversion.
package gui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

// Presenter implements ebiten.Game around a shooter session.
type Presenter struct {
	game    *skyshooter.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	face    text.Face
	latch   skyshooter.FireLatch

	touches      []ebiten.TouchID
	justPressed  []ebiten.TouchID
	justReleased []ebiten.TouchID
}

// NewPresenter creates a presenter for game. A nil logger gets a default one.
func NewPresenter(game *skyshooter.Game, runtime core.RuntimeConfig, logger *log.Logger) *Presenter {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skyshooter-gui",
		})
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	p := &Presenter{
		game:    game,
		runtime: runtime,
		logger:  logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	p.game.Reset(runtime)
	return p
}

// Update advances the simulation by one tick. Ebiten calls it at a fixed
// TPS, so every tick is one nominal frame.
func (p *Presenter) Update() error {
	frame := buildFrame(p.readInput(), &p.latch)
	return p.step(frame)
}

// step applies one frame; split from Update so it runs without a window.
func (p *Presenter) step(frame core.InputFrame) error {
	if frame.Has(core.ActionQuit) {
		p.logger.Info("quit", "score", p.game.State().Score, "ticks", p.game.State().Tick)
		return ebiten.Termination
	}

	if frame.Has(core.ActionRestart) {
		p.logger.Info("restart", "score", p.game.State().Score)
		p.runtime.Seed = time.Now().UnixNano()
		p.game.Reset(p.runtime)
		p.latch.Release()
		return nil
	}

	result := p.game.Step(frame)
	if result.Destroyed > 0 {
		p.logger.Debug("targets destroyed", "count", result.Destroyed, "score", result.State.Score)
	}
	return nil
}

// Draw renders the current snapshot.
func (p *Presenter) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, p.game.Snapshot(), p.game.State().Paused, p.face)
}

// Layout fixes the logical screen to the field size.
func (p *Presenter) Layout(_, _ int) (int, int) {
	cfg := p.game.Config()
	return int(cfg.Field.Width), int(cfg.Field.Height)
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(game *skyshooter.Game, runtime core.RuntimeConfig, logger *log.Logger) error {
	p := NewPresenter(game, runtime, logger)
	cfg := game.Config()

	ebiten.SetWindowSize(int(cfg.Field.Width), int(cfg.Field.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	p.logger.Info("window opened", "mode", game.ID(), "tps", ebiten.TPS())
	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
