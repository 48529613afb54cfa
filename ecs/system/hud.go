package system

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	heartGap          = 6.0
	instructionLeft   = 10
	instructionTop    = 70
	instructionHeight = 16
)

var (
	heartColor      = colornames.Crimson
	heartEmpty      = colornames.Dimgray
	indicatorFace   = color.RGBA{R: 20, G: 20, B: 30, A: 180}
	indicatorNeedle = colornames.Gold
	overlayColor    = color.RGBA{A: 170}
)

// HUDSystem draws the UI overlays after the world pass.
type HUDSystem struct {
	white *ebiten.Image

	fontOnce sync.Once
	title    text.Face
	subtitle text.Face
}

func NewHUDSystem() *HUDSystem {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &HUDSystem{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	state := LevelState(w)

	if state != nil {
		for i, line := range state.Instructions {
			ebitenutil.DebugPrintAt(screen, line, instructionLeft, instructionTop+i*instructionHeight)
		}
	}

	ecs.ForEach2(w, component.HealthBarComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, bar *component.HealthBar, health *component.Health) {
			for i := 0; i < health.Max; i++ {
				x := bar.X + float64(i)*(bar.HeartSize+heartGap)
				h.drawHeart(screen, x, bar.Y, bar.HeartSize, i < health.Current)
			}
		})

	ecs.ForEach(w, component.AbilityIndicatorComponent.Kind(), func(e ecs.Entity, ind *component.AbilityIndicator) {
		drawIndicator(screen, ind)
	})

	if state != nil && state.GameOver {
		h.drawGameOver(screen, state)
	}
}

func heartPath(x, y, size float64) *vector.Path {
	s := float32(size)
	left, top := float32(x), float32(y)
	cx := left + s/2

	var p vector.Path
	p.MoveTo(cx, top+s*0.3)
	p.CubicTo(cx, top, left, top, left, top+s*0.3)
	p.CubicTo(left, top+s*0.6, cx, top+s*0.8, cx, top+s)
	p.CubicTo(cx, top+s*0.8, left+s, top+s*0.6, left+s, top+s*0.3)
	p.CubicTo(left+s, top, cx, top, cx, top+s*0.3)
	p.Close()
	return &p
}

func (h *HUDSystem) drawHeart(screen *ebiten.Image, x, y, size float64, full bool) {
	path := heartPath(x, y, size)

	var vs []ebiten.Vertex
	var is []uint16
	clr := heartColor
	if full {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	} else {
		clr = heartEmpty
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 2})
	}
	h.fillTriangles(screen, vs, is, clr)
}

func (h *HUDSystem) fillTriangles(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, h.white, op)
}

func drawIndicator(screen *ebiten.Image, ind *component.AbilityIndicator) {
	cx, cy, r := float32(ind.X), float32(ind.Y), float32(ind.Radius)
	vector.FillCircle(screen, cx, cy, r, indicatorFace, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, colornames.White, true)

	tipX := ind.X + math.Cos(ind.Current)*ind.Radius*0.8
	tipY := ind.Y + math.Sin(ind.Current)*ind.Radius*0.8
	vector.StrokeLine(screen, cx, cy, float32(tipX), float32(tipY), 3, indicatorNeedle, true)
	vector.FillCircle(screen, cx, cy, 3, indicatorNeedle, true)
}

func (h *HUDSystem) loadFonts() {
	h.fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return
		}
		h.title = &text.GoTextFace{Source: src, Size: 48}
		h.subtitle = &text.GoTextFace{Source: src, Size: 20}
	})
}

func (h *HUDSystem) drawGameOver(screen *ebiten.Image, state *component.LevelState) {
	vector.FillRect(screen, 0, 0, float32(state.ScreenW), float32(state.ScreenH), overlayColor, false)

	h.loadFonts()
	if h.title == nil {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - Press R to Restart", int(state.ScreenW/2)-90, int(state.ScreenH/2))
		return
	}
	drawCentered(screen, "GAME OVER", h.title, state.ScreenW/2, state.ScreenH/2-40, colornames.Red)
	drawCentered(screen, "Press R to Restart", h.subtitle, state.ScreenW/2, state.ScreenH/2+20, colornames.White)
}

func drawCentered(screen *ebiten.Image, msg string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}
