package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/phaseshift/assets"
	"github.com/milk9111/phaseshift/common"
	"github.com/milk9111/phaseshift/config"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/ecs/entity"
	"github.com/milk9111/phaseshift/ecs/system"
	"github.com/milk9111/phaseshift/levels"
	"github.com/milk9111/phaseshift/physics"
	"github.com/milk9111/phaseshift/storage"
)

// session is everything that lives for one level attempt. It is rebuilt
// from scratch on restart, reload and level change.
type session struct {
	level     *levels.Level
	world     *ecs.World
	phys      *physics.World
	scheduler *ecs.Scheduler
}

func (s *session) close() {
	if s == nil {
		return
	}
	s.phys.Close()
}

type Game struct {
	cfg    config.Config
	logger *log.Logger
	debug  bool
	frames int

	clock   common.Clock
	input   system.InputSource
	cues    *assets.CuePlayer
	scripts *system.FireScripts
	store   *storage.Store
	watcher *levels.Watcher

	render *system.RenderSystem
	hud    *system.HUDSystem

	current *session
}

type gameOptions struct {
	level   string
	debug   bool
	muted   bool
	store   *storage.Store
	watcher *levels.Watcher
}

func NewGame(cfg config.Config, logger *log.Logger, opts gameOptions) (*Game, error) {
	cues := assets.NewCuePlayer(logger, cfg.Audio.Volume)
	cues.SetMuted(opts.muted)

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		debug:   opts.debug,
		clock:   common.NewSystemClock(),
		input:   system.NewEbitenInput(),
		cues:    cues,
		scripts: system.NewFireScripts(),
		store:   opts.store,
		watcher: opts.watcher,
		render:  system.NewRenderSystem(),
		hud:     system.NewHUDSystem(),
	}

	name := opts.level
	if name == "" {
		if names := levels.Names(); len(names) > 0 {
			name = names[0]
		}
	}
	if err := g.loadLevel(name); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newSession(lvl *levels.Level) (*session, error) {
	w := ecs.NewWorld()
	phys := physics.NewWorld(g.cfg.Physics.Gravity)
	screenW, screenH := float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)

	if err := entity.LoadLevelToWorld(w, phys, lvl, g.cfg, screenW, screenH, g.clock.NowMs()); err != nil {
		phys.Close()
		return nil, err
	}

	scheduler := ecs.NewScheduler(
		system.NewInputSystem(g.input),
		system.NewPlayerControllerSystem(phys, g.logger),
		system.NewTeleportSystem(),
		system.NewEnemySystem(phys, g.scripts, g.logger),
		system.NewPhysicsSystem(phys),
		system.NewProjectileSystem(g.cfg.Player.InvulnerableMs),
		system.NewTTLSystem(),
		system.NewRespawnSystem(),
		system.NewGameOverSystem(),
		system.NewAbilityIndicatorSystem(),
		system.NewAudioSystem(g.cues),
		system.NewStatsSystem(g.store, g.logger),
	)
	return &session{level: lvl, world: w, phys: phys, scheduler: scheduler}, nil
}

// loadLevel tears down the running session and starts name fresh. On error
// the old session keeps running.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("game: load level %s: %w", name, err)
	}
	next, err := g.newSession(lvl)
	if err != nil {
		return fmt.Errorf("game: build level %s: %w", name, err)
	}
	g.current.close()
	g.current = next
	g.logger.Info("level started", "level", lvl.Name)
	return nil
}

func (g *Game) restart() {
	if g.current == nil {
		return
	}
	name := g.current.level.Name
	if err := g.store.RecordRestart(name); err != nil {
		g.logger.Error("record restart", "level", name, "err", err)
	}
	if err := g.loadLevel(name); err != nil {
		g.logger.Error("restart", "err", err)
	}
}

// restartAllowed reports whether R may restart s: only from the game-over
// screen.
func restartAllowed(s *session) bool {
	if s == nil {
		return false
	}
	state := system.LevelState(s.world)
	return state != nil && state.GameOver
}

func (g *Game) nextLevel() {
	if g.current == nil {
		return
	}
	next := g.current.level.Next
	if next == "" {
		next = followingLevel(levels.Names(), g.current.level.Name)
	}
	if err := g.loadLevel(next); err != nil {
		g.logger.Error("next level", "err", err)
	}
}

// followingLevel wraps around to the first level after the last.
func followingLevel(names []string, current string) string {
	if len(names) == 0 {
		return current
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (g *Game) drainWatcher() {
	if g.watcher == nil || g.current == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if strings.HasPrefix(name, "scripts/") {
				g.scripts.Invalidate(name)
				reload = true
			} else if name == g.current.level.Name {
				reload = true
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("level watcher", "err", err)
			}
		default:
			if reload {
				g.logger.Info("reloading level", "level", g.current.level.Name)
				if err := g.loadLevel(g.current.level.Name); err != nil {
					g.logger.Error("reload", "err", err)
				}
			}
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	switch {
	case g.input.JustPressed(component.ActionRestart) && restartAllowed(g.current):
		g.restart()
	case g.input.JustPressed(component.ActionNextLevel):
		g.nextLevel()
	}

	if g.current == nil {
		return nil
	}
	if state := system.LevelState(g.current.world); state != nil {
		state.NowMs = g.clock.NowMs()
	}
	g.current.scheduler.Update(g.current.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.current == nil {
		return
	}
	g.render.Draw(g.current.world, screen)
	g.hud.Draw(g.current.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Bodies: %d    Systems: %d", g.frames, ebiten.ActualFPS(), g.current.phys.Len(), g.current.scheduler.Len()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the running level and the watcher.
func (g *Game) Close() {
	g.current.close()
	g.current = nil
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
