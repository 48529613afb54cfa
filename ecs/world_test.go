package ecs

import (
	"strings"
	"testing"

	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawn(t *testing.T, w *World) Entity {
	t.Helper()
	e := CreateEntity(w)
	require.True(t, e.Valid())
	return e
}

func attach[T any](t *testing.T, w *World, e Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	require.NoError(t, Add(w, e, h.Kind(), v))
}

func TestEntityHandlesRetireOnDestroy(t *testing.T) {
	w := NewWorld()
	player := spawn(t, w)
	platform := spawn(t, w)
	enemy := spawn(t, w)
	attach(t, w, platform, component.HealthComponent, component.NewHealth(1))

	require.True(t, DestroyEntity(w, platform))
	assert.False(t, DestroyEntity(w, platform), "second destroy is a no-op")
	assert.Equal(t, []Entity{player, enemy}, Entities(w))

	reused := spawn(t, w)
	assert.Equal(t, platform.id(), reused.id(), "freed slot is reused")
	assert.NotEqual(t, platform, reused)
	assert.Equal(t, "2v1", reused.String())

	assert.False(t, IsAlive(w, platform))
	assert.False(t, Has(w, platform, component.HealthComponent.Kind()))
	assert.False(t, Has(w, reused, component.HealthComponent.Kind()), "reused slot starts empty")
	assert.ErrorIs(t, Add(w, platform, component.HealthComponent.Kind(), component.NewHealth(1)), component.ErrEntityNotAlive)
}

func TestGameplayComponentsAttach(t *testing.T) {
	w := NewWorld()
	player := spawn(t, w)
	platform := spawn(t, w)

	health := component.NewHealth(5)
	attach(t, w, player, component.PlayerComponent, &component.Player{MoveSpeed: 5, JumpForce: 8, CoyoteWindowMs: 150, Facing: 1})
	attach(t, w, player, component.HealthComponent, health)
	attach(t, w, player, component.InputComponent, &component.Input{})
	attach(t, w, platform, component.TeleportComponent, component.NewTeleport(
		component.TeleportConfig{X: 320, Y: 520, W: 120, H: 20},
		component.TeleportConfig{X: 480, Y: 400, W: 120, H: 20},
		"wallphase1", "wallphase2",
	))

	got, ok := Get(w, player, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Same(t, health, got, "stores keep the pointer that was added")
	got.Damage(2)
	again, _ := Get(w, player, component.HealthComponent.Kind())
	assert.Equal(t, 3, again.Current)

	p, ok := Get(w, player, component.PlayerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, int64(150), p.CoyoteWindowMs)

	tp, ok := Get(w, platform, component.TeleportComponent.Kind())
	require.True(t, ok)
	assert.True(t, tp.AtA)
	assert.False(t, Has(w, player, component.TeleportComponent.Kind()))
	assert.False(t, Has(w, platform, component.PlayerComponent.Kind()))

	// Replacing keeps one entry per entity.
	attach(t, w, player, component.HealthComponent, component.NewHealth(5))
	assert.Equal(t, 1, Count(w, component.HealthComponent.Kind()))

	assert.True(t, Remove(w, player, component.HealthComponent.Kind()))
	assert.False(t, Remove(w, player, component.HealthComponent.Kind()))
	assert.False(t, Has(w, player, component.HealthComponent.Kind()))
	assert.True(t, Has(w, player, component.PlayerComponent.Kind()))
}

func TestAddRejectsBadArguments(t *testing.T) {
	w := NewWorld()
	e := spawn(t, w)

	assert.ErrorIs(t, Add(w, e, component.HealthComponent.Kind(), nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(w, e, component.ComponentKind[component.Health]{}, component.NewHealth(1)), component.ErrInvalidComponentKind)
	assert.ErrorIs(t, Add(nil, e, component.HealthComponent.Kind(), component.NewHealth(1)), component.ErrEntityNotAlive)
	assert.Zero(t, Count(w, component.HealthComponent.Kind()))
}

func TestKindsOverOneTypeAreSeparateStores(t *testing.T) {
	w := NewWorld()
	e := spawn(t, w)
	shield := component.NewComponent[component.Health]()

	attach(t, w, e, shield, component.NewHealth(3))
	assert.True(t, Has(w, e, shield.Kind()))
	assert.False(t, Has(w, e, component.HealthComponent.Kind()))
	assert.NotEqual(t, shield.Kind().ID(), component.HealthComponent.Kind().ID())
	assert.True(t, strings.HasPrefix(shield.Kind().String(), "component.Health#"), shield.Kind().String())
}

func TestForEach3SurvivesDestroy(t *testing.T) {
	type shot struct {
		e       Entity
		expires int64
	}
	build := func(t *testing.T, w *World, expiries ...int64) []shot {
		shots := make([]shot, 0, len(expiries))
		for _, exp := range expiries {
			e := spawn(t, w)
			attach(t, w, e, component.ProjectileComponent, &component.Projectile{Owner: component.FactionEnemy, Damage: 1})
			attach(t, w, e, component.TTLComponent, &component.TTL{ExpiresAtMs: exp})
			attach(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Group: component.GroupProjectile})
			shots = append(shots, shot{e, exp})
		}
		return shots
	}

	t.Run("expired shots removed mid-walk", func(t *testing.T) {
		w := NewWorld()
		shots := build(t, w, 50, 150, 80, 300)
		// A projectile without a TTL is not part of the sweep.
		stray := spawn(t, w)
		attach(t, w, stray, component.ProjectileComponent, &component.Projectile{Owner: component.FactionPlayer})
		attach(t, w, stray, component.PhysicsBodyComponent, &component.PhysicsBody{Group: component.GroupProjectile})

		const now = 100
		visited := 0
		ForEach3(w, component.ProjectileComponent.Kind(), component.TTLComponent.Kind(), component.PhysicsBodyComponent.Kind(),
			func(e Entity, _ *component.Projectile, ttl *component.TTL, _ *component.PhysicsBody) {
				visited++
				if now >= ttl.ExpiresAtMs {
					DestroyEntity(w, e)
				}
			})

		assert.Equal(t, 4, visited)
		assert.Equal(t, 2, Count(w, component.TTLComponent.Kind()))
		assert.False(t, IsAlive(w, shots[0].e))
		assert.True(t, IsAlive(w, shots[1].e))
		assert.False(t, IsAlive(w, shots[2].e))
		assert.True(t, IsAlive(w, shots[3].e))
		assert.True(t, IsAlive(w, stray))
	})

	t.Run("entities destroyed ahead are skipped", func(t *testing.T) {
		w := NewWorld()
		shots := build(t, w, 10, 20, 30)

		var seen []Entity
		ForEach3(w, component.ProjectileComponent.Kind(), component.TTLComponent.Kind(), component.PhysicsBodyComponent.Kind(),
			func(e Entity, _ *component.Projectile, _ *component.TTL, _ *component.PhysicsBody) {
				seen = append(seen, e)
				for _, s := range shots[1:] {
					DestroyEntity(w, s.e)
				}
			})

		assert.Equal(t, []Entity{shots[0].e}, seen)
	})
}

func TestQueriesRequireEveryKind(t *testing.T) {
	w := NewWorld()
	player := spawn(t, w)
	attach(t, w, player, component.PlayerComponent, &component.Player{Facing: 1})
	attach(t, w, player, component.InputComponent, &component.Input{})
	attach(t, w, player, component.HealthComponent, component.NewHealth(5))
	attach(t, w, player, component.PhysicsBodyComponent, &component.PhysicsBody{Group: component.GroupPlayer})

	enemy := spawn(t, w)
	attach(t, w, enemy, component.EnemyComponent, &component.Enemy{HasShield: true, ShieldHealth: 3})
	attach(t, w, enemy, component.HealthComponent, component.NewHealth(3))
	attach(t, w, enemy, component.PhysicsBodyComponent, &component.PhysicsBody{Group: component.GroupEnemy})

	var players []Entity
	ForEach4(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.HealthComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e Entity, _ *component.Player, _ *component.Input, _ *component.Health, _ *component.PhysicsBody) {
			players = append(players, e)
		})
	assert.Equal(t, []Entity{player}, players)

	groups := map[Entity]component.CollisionGroup{}
	ForEach2(w, component.HealthComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e Entity, _ *component.Health, pb *component.PhysicsBody) {
			groups[e] = pb.Group
		})
	assert.Equal(t, map[Entity]component.CollisionGroup{
		player: component.GroupPlayer,
		enemy:  component.GroupEnemy,
	}, groups)

	visited := 0
	ForEach(w, component.TeleportComponent.Kind(), func(Entity, *component.Teleport) { visited++ })
	assert.Zero(t, visited, "a kind never added has no store")
}

func TestFirstFindsLevelSingleton(t *testing.T) {
	w := NewWorld()
	_, ok := First(w, component.LevelStateComponent.Kind())
	assert.False(t, ok)

	spawn(t, w)
	level := spawn(t, w)
	attach(t, w, level, component.LevelStateComponent, &component.LevelState{Name: "level1"})

	got, ok := First(w, component.LevelStateComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, level, got)

	DestroyEntity(w, level)
	_, ok = First(w, component.LevelStateComponent.Kind())
	assert.False(t, ok)
	assert.Zero(t, Count(w, component.LevelStateComponent.Kind()))
}

func TestSchedulerRunsPipelineThenFlushes(t *testing.T) {
	w := NewWorld()
	var order []string
	seenEarly, seenLate := -1, -1

	early := SystemFunc(func(w *World) {
		order = append(order, "early")
		seenEarly = len(EventsOf[component.CueRequest](w))
	})
	producer := SystemFunc(func(w *World) {
		order = append(order, "producer")
		Emit(w, component.EventCue, component.CueRequest{Name: "jump"})
		Emit(w, component.EventLevel, component.LevelEvent{Kind: component.LevelEventFell, Level: "level1"})
	})
	late := SystemFunc(func(w *World) {
		order = append(order, "late")
		seenLate = len(EventsOf[component.CueRequest](w))
	})

	s := NewScheduler(early, nil, producer, late)
	assert.Equal(t, 3, s.Len(), "nil systems are dropped")

	for frame := 0; frame < 2; frame++ {
		order = order[:0]
		s.Update(w)

		assert.Equal(t, []string{"early", "producer", "late"}, order)
		assert.Zero(t, seenEarly, "frame %d: events of the previous frame leaked", frame)
		assert.Equal(t, 1, seenLate, "frame %d", frame)
		assert.Empty(t, w.Events().Events(), "frame %d: queue not flushed", frame)
	}
}

func TestEventsOfFiltersByPayloadType(t *testing.T) {
	w := NewWorld()
	Emit(w, component.EventCue, component.CueRequest{Name: "wallphase1"})
	Emit(w, component.EventLevel, component.LevelEvent{Kind: component.LevelEventCleared, Level: "level2"})
	Emit(w, component.EventCue, component.CueRequest{Name: "wallphase2"})

	assert.Equal(t, []component.CueRequest{{Name: "wallphase1"}, {Name: "wallphase2"}}, EventsOf[component.CueRequest](w))
	assert.Equal(t, []component.LevelEvent{{Kind: component.LevelEventCleared, Level: "level2"}}, EventsOf[component.LevelEvent](w))

	drained := w.Events().Drain()
	assert.Len(t, drained, 3)
	assert.Equal(t, component.EventCue, drained[0].Type)
	assert.Empty(t, EventsOf[component.CueRequest](w))
}

func TestNilWorldIsInert(t *testing.T) {
	assert.Zero(t, CreateEntity(nil))
	assert.False(t, IsAlive(nil, 1))
	assert.Nil(t, Entities(nil))
	assert.False(t, Has(nil, 1, component.HealthComponent.Kind()))
	assert.Zero(t, Count(nil, component.HealthComponent.Kind()))
	assert.Nil(t, EventsOf[component.CueRequest](nil))

	assert.NotPanics(t, func() {
		Emit(nil, component.EventCue, component.CueRequest{Name: "hit"})
		NewScheduler().Update(nil)
		var s *Scheduler
		s.Update(NewWorld())
		assert.Zero(t, s.Len())
	})
}
