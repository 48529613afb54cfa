package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundsRecorder struct {
	x, y, w, h float64
	appearance string
	sets       int
}

func (b *boundsRecorder) Position() (float64, float64)           { return b.x, b.y }
func (b *boundsRecorder) SetPosition(x, y float64)               { b.x, b.y = x, y }
func (b *boundsRecorder) Size() (float64, float64)               { return b.w, b.h }
func (b *boundsRecorder) Velocity() (float64, float64)           { return 0, 0 }
func (b *boundsRecorder) SetVelocity(vx, vy float64)             {}
func (b *boundsRecorder) Appearance() string                     { return b.appearance }
func (b *boundsRecorder) SetAppearance(token string)             { b.appearance = token }
func (b *boundsRecorder) CollidingWith(group CollisionGroup) bool { return false }
func (b *boundsRecorder) Remove()                                {}
func (b *boundsRecorder) SetBounds(x, y, w, h float64) {
	b.x, b.y, b.w, b.h = x, y, w, h
	b.sets++
}

func TestHealthStaysInRange(t *testing.T) {
	h := NewHealth(5)

	assert.Equal(t, 2, h.Damage(3))
	assert.Equal(t, 0, h.Damage(10))
	assert.Equal(t, 0, h.Damage(1))
	assert.True(t, h.IsDead())

	assert.Equal(t, 4, h.Heal(4))
	assert.Equal(t, 5, h.Heal(100))
	assert.False(t, h.IsDead())
}

func TestHealthReset(t *testing.T) {
	cases := []struct {
		name   string
		damage int
	}{
		{"full", 0},
		{"hurt", 2},
		{"dead", 99},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(5)
			h.Damage(c.damage)
			h.Reset()
			assert.Equal(t, h.Max, h.Current)
		})
	}
}

func TestPlayerCoyoteWindow(t *testing.T) {
	cases := []struct {
		name string
		at   int64
		want bool
	}{
		{"inside", 149, true},
		{"edge", 150, false},
		{"outside", 151, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Player{CoyoteWindowMs: 150}
			p.MarkGrounded(0)
			assert.Equal(t, c.want, p.CanJump(false, c.at))
		})
	}
}

func TestPlayerNeverGroundedCannotAirJump(t *testing.T) {
	p := &Player{CoyoteWindowMs: 150}
	assert.False(t, p.CanJump(false, 10))
	assert.True(t, p.CanJump(true, 10))
}

func TestTeleportToggleRoundTrip(t *testing.T) {
	a := TeleportConfig{X: 320, Y: 520, W: 150, H: 20, Appearance: "purple"}
	b := TeleportConfig{X: 960, Y: 370, W: 500, H: 100, Appearance: "orange"}
	tp := NewTeleport(a, b, "wallphase1", "wallphase2")
	body := &boundsRecorder{}
	tp.Apply(body)

	before := *tp
	assert.Equal(t, "wallphase1", tp.Toggle(body))
	assert.False(t, tp.AtA)
	assert.Equal(t, b.Appearance, body.appearance)
	assert.Equal(t, [4]float64{b.X, b.Y, b.W, b.H}, [4]float64{body.x, body.y, body.w, body.h})

	assert.Equal(t, "wallphase2", tp.Toggle(body))
	assert.Equal(t, before.AtA, tp.AtA)
	assert.Equal(t, before.Active(), tp.Active())
	assert.Equal(t, [4]float64{a.X, a.Y, a.W, a.H}, [4]float64{body.x, body.y, body.w, body.h})
	assert.Equal(t, 3, body.sets)
}

func TestTeleportUpdateOnlyOnEdge(t *testing.T) {
	tp := NewTeleport(TeleportConfig{Appearance: "a"}, TeleportConfig{Appearance: "b"})
	body := &boundsRecorder{}

	cue, toggled := tp.Update(false, body)
	assert.False(t, toggled)
	assert.Empty(t, cue)
	assert.True(t, tp.AtA)

	cue, toggled = tp.Update(true, body)
	assert.True(t, toggled)
	assert.Empty(t, cue)
	assert.False(t, tp.AtA)
	assert.Equal(t, "b", body.appearance)
}

func TestTeleportCuesArePerPlatform(t *testing.T) {
	first := NewTeleport(TeleportConfig{}, TeleportConfig{}, "one", "two")
	second := NewTeleport(TeleportConfig{}, TeleportConfig{}, "one", "two")

	assert.Equal(t, "one", first.Toggle(nil))
	assert.Equal(t, "two", first.Toggle(nil))
	assert.Equal(t, "one", second.Toggle(nil))
}

func TestIndicatorConvergesWithoutOvershoot(t *testing.T) {
	ind := NewAbilityIndicator(0, 0, 24)
	ind.Current = 0.1
	ind.OnTeleportUsed()

	start := math.Abs(ind.Target - ind.Current)
	for i := 0; i < 100; i++ {
		before := ind.Target - ind.Current
		ind.Advance()
		after := ind.Target - ind.Current
		require.GreaterOrEqual(t, before*after, 0.0, "crossed the target on step %d", i)
		require.LessOrEqual(t, math.Abs(after), math.Abs(before))
	}
	assert.InDelta(t, ind.Target, ind.Current, 1e-6)
	assert.Greater(t, start, 1.0)
}

func TestIndicatorTakesShortArc(t *testing.T) {
	ind := NewAbilityIndicator(0, 0, 24)
	ind.Current = math.Pi - 0.1
	ind.Target = -math.Pi + 0.1

	ind.Advance()
	// Shortest arc is +0.2 through pi, so the first step moves forward.
	assert.InDelta(t, math.Pi-0.1+0.2*IndicatorSpeed, ind.Current, 1e-9)
}

func TestEnemyShieldThenCore(t *testing.T) {
	e := &Enemy{HasShield: true, ShieldHealth: 3}
	core := NewHealth(2)

	assert.Equal(t, HitShield, e.TakeHit(1, core))
	assert.Equal(t, HitShield, e.TakeHit(1, core))
	assert.Equal(t, HitShieldBroken, e.TakeHit(1, core))
	assert.False(t, e.Shielded())
	assert.Equal(t, 0, e.ShieldHealth)
	assert.Equal(t, 2, core.Current)

	assert.Equal(t, HitCore, e.TakeHit(1, core))
	assert.Equal(t, 0, e.ShieldHealth)
	assert.Equal(t, 1, core.Current)

	assert.Equal(t, HitKilled, e.TakeHit(1, core))
	assert.Equal(t, HitIgnored, e.TakeHit(1, core))
	assert.Equal(t, 0, core.Current)
}

func TestEnemyHitWithoutHealthIsIgnored(t *testing.T) {
	e := &Enemy{HasShield: true, ShieldHealth: 3}
	assert.Equal(t, HitIgnored, e.TakeHit(1, nil))
	assert.Equal(t, 3, e.ShieldHealth)
}

func TestEnemyCooldown(t *testing.T) {
	e := &Enemy{IntervalMs: 1500}
	e.Arm(1000)

	assert.False(t, e.Ready(1000))
	assert.False(t, e.Ready(2499))
	assert.True(t, e.Ready(2500))

	zero := &Enemy{}
	zero.Arm(0)
	assert.Equal(t, int64(DefaultEnemyIntervalMs), zero.CooldownUntil)
}
