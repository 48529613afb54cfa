package physics

import (
	"testing"

	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicBodyFalls(t *testing.T) {
	w := NewWorld(DefaultGravity)
	b := w.NewBody(BodySpec{Kind: Dynamic, Group: component.GroupPlayer, X: 50, Y: 50, W: 10, H: 10})

	for i := 0; i < 10; i++ {
		w.Step()
	}

	_, y := b.Position()
	_, vy := b.Velocity()
	assert.Greater(t, y, 50.0)
	assert.Greater(t, vy, 0.0)
}

func TestNoGravityBodyKeepsVelocity(t *testing.T) {
	w := NewWorld(DefaultGravity)
	b := w.NewBody(BodySpec{Kind: Dynamic, Group: component.GroupProjectile, X: 0, Y: 0, W: 4, H: 4, Sensor: true, NoGravity: true})
	b.SetVelocity(5, 0)

	w.Step()

	x, y := b.Position()
	assert.InDelta(t, 5.0, x, 1e-6)
	assert.InDelta(t, 0.0, y, 1e-6)
}

func TestRestingBodyReportsPlatformContact(t *testing.T) {
	w := NewWorld(DefaultGravity)
	w.NewBody(BodySpec{Kind: Static, Group: component.GroupPlatform, X: 100, Y: 200, W: 200, H: 20})
	player := w.NewBody(BodySpec{Kind: Dynamic, Group: component.GroupPlayer, X: 100, Y: 180, W: 20, H: 20})

	for i := 0; i < 5; i++ {
		w.Step()
	}

	assert.True(t, player.CollidingWith(component.GroupPlatform))
	assert.False(t, player.CollidingWith(component.GroupEnemy))
	_, y := player.Position()
	assert.InDelta(t, 180.0, y, 2.0)
}

func TestStaticSetBounds(t *testing.T) {
	w := NewWorld(DefaultGravity)
	b := w.NewBody(BodySpec{Kind: Static, Group: component.GroupPlatform, X: 10, Y: 20, W: 30, H: 40, Appearance: "purple"})

	b.SetBounds(100, 200, 300, 50)
	b.SetAppearance("orange")

	x, y := b.Position()
	bw, bh := b.Size()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)
	assert.Equal(t, 300.0, bw)
	assert.Equal(t, 50.0, bh)
	assert.Equal(t, "orange", b.Appearance())

	vx, vy := b.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestRemoveAndClose(t *testing.T) {
	w := NewWorld(DefaultGravity)
	a := w.NewBody(BodySpec{Kind: Dynamic, Group: component.GroupEnemy, X: 0, Y: 0, W: 10, H: 10})
	w.NewBody(BodySpec{Kind: Static, Group: component.GroupPlatform, X: 0, Y: 50, W: 100, H: 10})
	require.Equal(t, 2, w.Len())

	a.Remove()
	a.Remove()
	assert.Equal(t, 1, w.Len())
	assert.False(t, a.CollidingWith(component.GroupPlatform))

	w.Close()
	assert.Equal(t, 0, w.Len())
	w.Step()
}
