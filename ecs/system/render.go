package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/raycast"
)

// RenderSystem draws the first-person view into an internal framebuffer and
// blits it to the screen. It is not scheduled; the game shell calls Draw.
type RenderSystem struct {
	fb         *raycast.Framebuffer
	atlas      *raycast.Atlas
	columnStep int
	debug      bool
}

func NewRenderSystem(internalW, internalH int, atlas *raycast.Atlas, columnStep int) *RenderSystem {
	return &RenderSystem{
		fb:         raycast.NewFramebuffer(internalW, internalH),
		atlas:      atlas,
		columnStep: columnStep,
	}
}

// SetDebug toggles the minimap overlay.
func (r *RenderSystem) SetDebug(debug bool) {
	r.debug = debug
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	maze := currentMaze(w)
	if maze == nil {
		return
	}

	playerEnt, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, playerEnt, component.PlayerComponent.Kind())
	transform, okT := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	if player == nil || !okT || transform == nil {
		return
	}

	pose := raycast.Pose{Pos: transform.Pos, Angle: transform.Angle, FOV: player.FOV}
	sprites := collectBillboards(w)

	raycast.RenderWorld(r.fb, maze, pose, r.atlas, sprites, r.columnStep)
	if r.debug {
		raycast.RenderMinimap(r.fb, maze, pose, sprites, 3, 8, 8)
	}
	r.fb.Blit(screen)

	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), 8, 2)

	if ent, ok := ecs.First(w, component.CoinCounterComponent.Kind()); ok {
		if counter, has := ecs.Get(w, ent, component.CoinCounterComponent.Kind()); has && counter != nil {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Coins %d/%d", counter.Collected, counter.Total), 8, sh-18)
		}
	}

	if ent, ok := ecs.First(w, component.LevelStateComponent.Kind()); ok {
		if state, has := ecs.Get(w, ent, component.LevelStateComponent.Kind()); has && state != nil && state.Name != "" {
			label := fmt.Sprintf("%d. %s", state.Index+1, state.Name)
			ebitenutil.DebugPrintAt(screen, label, sw-8-6*len(label), sh-18)
		}
	}
}

// collectBillboards snapshots every billboard entity for the renderer.
func collectBillboards(w *ecs.World) []raycast.Billboard {
	var sprites []raycast.Billboard
	ecs.ForEach2(w, component.BillboardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Billboard, t *component.Transform) {
		if b == nil || t == nil {
			return
		}
		kind := raycast.SpriteCoin
		if b.Kind == "chaser" {
			kind = raycast.SpriteChaser
		}
		sprites = append(sprites, raycast.Billboard{Pos: t.Pos, Kind: kind, Scale: b.Scale})
	})
	return sprites
}
