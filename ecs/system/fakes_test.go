package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/physics"
)

type fakeBody struct {
	x, y       float64
	w, h       float64
	vx, vy     float64
	appearance string
	touching   map[component.CollisionGroup]bool
	removed    bool
}

func newFakeBody(x, y, w, h float64) *fakeBody {
	return &fakeBody{x: x, y: y, w: w, h: h, touching: map[component.CollisionGroup]bool{}}
}

func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) SetPosition(x, y float64)     { b.x, b.y = x, y }
func (b *fakeBody) Size() (float64, float64)     { return b.w, b.h }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(vx, vy float64)   { b.vx, b.vy = vx, vy }
func (b *fakeBody) Appearance() string           { return b.appearance }
func (b *fakeBody) SetAppearance(token string)   { b.appearance = token }
func (b *fakeBody) Remove()                      { b.removed = true }
func (b *fakeBody) SetBounds(x, y, w, h float64) {
	b.x, b.y, b.w, b.h = x, y, w, h
}
func (b *fakeBody) CollidingWith(group component.CollisionGroup) bool {
	return b.touching[group]
}

type fakeSpawner struct {
	specs  []physics.BodySpec
	bodies []*fakeBody
}

func (s *fakeSpawner) Spawn(spec physics.BodySpec) component.Body {
	b := newFakeBody(spec.X, spec.Y, spec.W, spec.H)
	b.appearance = spec.Appearance
	s.specs = append(s.specs, spec)
	s.bodies = append(s.bodies, b)
	return b
}

type fakeInput struct {
	held    map[component.Action]bool
	pressed map[component.Action]bool
}

func (in *fakeInput) Held(a component.Action) bool        { return in.held[a] }
func (in *fakeInput) JustPressed(a component.Action) bool { return in.pressed[a] }

func pressed(actions ...component.Action) *component.Input {
	in := &component.Input{}
	for _, a := range actions {
		in.Pressed[a] = true
		in.Held[a] = true
	}
	return in
}

func held(actions ...component.Action) *component.Input {
	in := &component.Input{}
	for _, a := range actions {
		in.Held[a] = true
	}
	return in
}

type testLevel struct {
	w      *ecs.World
	state  *component.LevelState
	player ecs.Entity
	body   *fakeBody
}

// newTestLevel builds a world with a level singleton and a player standing
// at the spawn point.
func newTestLevel() *testLevel {
	w := ecs.NewWorld()
	state := &component.LevelState{
		Name:    "test",
		ScreenW: 800,
		ScreenH: 600,
		SpawnX:  400,
		SpawnY:  300,
	}
	_ = ecs.Add(w, ecs.CreateEntity(w), component.LevelStateComponent.Kind(), state)

	body := newFakeBody(400, 300, 40, 40)
	p := ecs.CreateEntity(w)
	_ = ecs.Add(w, p, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:      5,
		JumpForce:      8,
		CoyoteWindowMs: 150,
		Facing:         1,
		TongueSpeed:    12,
		TongueTTLMs:    250,
		TongueDamage:   1,
	})
	_ = ecs.Add(w, p, component.InputComponent.Kind(), &component.Input{})
	_ = ecs.Add(w, p, component.HealthComponent.Kind(), component.NewHealth(5))
	_ = ecs.Add(w, p, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Group: component.GroupPlayer})
	_ = ecs.Add(w, p, component.AbilityIndicatorComponent.Kind(), component.NewAbilityIndicator(700, 60, 24))

	return &testLevel{w: w, state: state, player: p, body: body}
}

func (l *testLevel) setInput(in *component.Input) {
	cur, _ := ecs.Get(l.w, l.player, component.InputComponent.Kind())
	*cur = *in
}

func (l *testLevel) addEnemy(x, y float64, enemy *component.Enemy, health int) (ecs.Entity, *fakeBody) {
	body := newFakeBody(x, y, 40, 40)
	e := ecs.CreateEntity(l.w)
	_ = ecs.Add(l.w, e, component.EnemyComponent.Kind(), enemy)
	_ = ecs.Add(l.w, e, component.HealthComponent.Kind(), component.NewHealth(health))
	_ = ecs.Add(l.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Group: component.GroupEnemy})
	return e, body
}

func (l *testLevel) addProjectile(x, y float64, owner component.Faction, expires int64) (ecs.Entity, *fakeBody) {
	body := newFakeBody(x, y, 10, 10)
	e := ecs.CreateEntity(l.w)
	_ = ecs.Add(l.w, e, component.ProjectileComponent.Kind(), &component.Projectile{Owner: owner, Damage: 1})
	_ = ecs.Add(l.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Group: component.GroupProjectile})
	_ = ecs.Add(l.w, e, component.TTLComponent.Kind(), &component.TTL{ExpiresAtMs: expires})
	return e, body
}

func cueNames(w *ecs.World) []string {
	var out []string
	for _, c := range ecs.EventsOf[component.CueRequest](w) {
		out = append(out, c.Name)
	}
	return out
}

func levelEvents(w *ecs.World) []component.LevelEventKind {
	var out []component.LevelEventKind
	for _, e := range ecs.EventsOf[component.LevelEvent](w) {
		out = append(out, e.Kind)
	}
	return out
}
