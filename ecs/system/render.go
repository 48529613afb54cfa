package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/phaseshift/common"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/ecs/render"
	"golang.org/x/image/colornames"
)

const (
	dashLength   = 6.0
	dashGap      = 4.0
	blinkEveryMs = 100
)

var (
	backgroundColor = colornames.Lightskyblue
	ghostColor      = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	shieldColor     = colornames.Deepskyblue
)

// RenderSystem draws the world pass: background, then every renderable body
// in layer order.
type RenderSystem struct {
	palette *render.Palette
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{palette: render.NewPalette()}
}

type drawItem struct {
	entity ecs.Entity
	layer  int
	r      *component.Renderable
	body   component.Body
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)
	if w == nil {
		return
	}

	var now int64
	if state := LevelState(w); state != nil {
		now = state.NowMs
	}

	var items []drawItem
	ecs.ForEach2(w, component.RenderableComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, rd *component.Renderable, pb *component.PhysicsBody) {
			if pb.Body == nil {
				return
			}
			items = append(items, drawItem{entity: e, layer: rd.Layer, r: rd, body: pb.Body})
		})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].entity) < uint64(items[j].entity)
	})

	for _, it := range items {
		if t, ok := ecs.Get(w, it.entity, component.TeleportComponent.Kind()); ok {
			drawDashedRect(screen, teleportRect(t.Inactive()), ghostColor)
		}
		if inv, ok := ecs.Get(w, it.entity, component.InvulnerableComponent.Kind()); ok && inv.Active(now) {
			if (now/blinkEveryMs)%2 == 1 {
				continue
			}
		}

		look := r.palette.Lookup(it.body.Appearance())
		rect := bodyRect(it.body)
		vector.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), look.Fill, false)
		if it.r.Outline {
			vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), 2, look.Shade.Outline(), false)
		}

		if enemy, ok := ecs.Get(w, it.entity, component.EnemyComponent.Kind()); ok && enemy.Shielded() {
			cx, cy := rect.Center()
			radius := math.Hypot(rect.Width, rect.Height)/2 + 4
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), float32(enemy.ShieldHealth), shieldColor, true)
		}
	}
}

func teleportRect(cfg component.TeleportConfig) common.Rect {
	return common.CenteredRect(cfg.X, cfg.Y, cfg.W, cfg.H)
}

func drawDashedRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	drawDashedLine(screen, x0, y0, x1, y0, clr)
	drawDashedLine(screen, x1, y0, x1, y1, clr)
	drawDashedLine(screen, x1, y1, x0, y1, clr)
	drawDashedLine(screen, x0, y1, x0, y0, clr)
}

func drawDashedLine(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}
	dx, dy := (x1-x0)/length, (y1-y0)/length
	for d := 0.0; d < length; d += dashLength + dashGap {
		end := math.Min(d+dashLength, length)
		vector.StrokeLine(screen,
			float32(x0+dx*d), float32(y0+dy*d),
			float32(x0+dx*end), float32(y0+dy*end),
			1.5, clr, false)
	}
}
