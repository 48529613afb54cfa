package entity

import (
	"fmt"

	"github.com/milk9111/phaseshift/config"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/levels"
	"github.com/milk9111/phaseshift/physics"
)

// BodySpawner creates physics bodies for new entities.
type BodySpawner interface {
	Spawn(spec physics.BodySpec) component.Body
}

var defaultTeleportCues = []string{"wallphase1", "wallphase2"}

const (
	layerPlatform = 0
	layerActor    = 1
)

// LoadLevelToWorld populates an empty world with lvl laid out on a
// screenW x screenH screen.
func LoadLevelToWorld(w *ecs.World, phys BodySpawner, lvl *levels.Level, cfg config.Config, screenW, screenH float64, now int64) error {
	if w == nil || phys == nil || lvl == nil {
		return fmt.Errorf("entity: load level: missing world, physics or level")
	}

	spawnX, spawnY := lvl.Player.Spawn.Resolve(screenW, screenH)
	state := &component.LevelState{
		Name:         lvl.Name,
		ScreenW:      screenW,
		ScreenH:      screenH,
		SpawnX:       spawnX,
		SpawnY:       spawnY,
		FallMargin:   component.DefaultFallMargin,
		NowMs:        now,
		StartedMs:    now,
		Instructions: append([]string(nil), lvl.Instructions...),
	}
	if err := ecs.Add(w, ecs.CreateEntity(w), component.LevelStateComponent.Kind(), state); err != nil {
		return fmt.Errorf("entity: level state: %w", err)
	}

	if lvl.Ground != nil {
		h := lvl.Ground.Height
		if _, err := NewPlatform(w, phys, screenW/2, screenH-h/2, screenW, h, lvl.Ground.Appearance); err != nil {
			return fmt.Errorf("entity: ground: %w", err)
		}
	}
	for i, p := range lvl.StaticPlatforms {
		x, y := p.Position.Resolve(screenW, screenH)
		if _, err := NewPlatform(w, phys, x, y, p.Width, p.Height, p.Appearance); err != nil {
			return fmt.Errorf("entity: platform %d: %w", i, err)
		}
	}
	for i, t := range lvl.TeleportingPlatforms {
		if _, err := NewTeleportingPlatform(w, phys, t, screenW, screenH); err != nil {
			return fmt.Errorf("entity: teleporting platform %d: %w", i, err)
		}
	}
	for i, e := range lvl.Enemies {
		if _, err := NewEnemy(w, phys, e, screenW, screenH, now); err != nil {
			return fmt.Errorf("entity: enemy %d: %w", i, err)
		}
	}
	if _, err := NewPlayerAt(w, phys, lvl, cfg, screenW, screenH); err != nil {
		return fmt.Errorf("entity: player: %w", err)
	}
	return nil
}
