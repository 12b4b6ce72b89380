package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rmendoza/mazebound/common"
	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/ecs/entity"
	"github.com/rmendoza/mazebound/ecs/system"
	"github.com/rmendoza/mazebound/levels"
	"github.com/rmendoza/mazebound/prefabs"
	"github.com/rmendoza/mazebound/raycast"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
	ModeVictory
)

const (
	internalWidth  = 640
	internalHeight = 360
)

var menuBackground = color.RGBA{R: 16, G: 12, B: 24, A: 255}

type Game struct {
	mode Mode

	world     *ecs.World
	scheduler *ecs.Scheduler
	// ambient systems keep sfx and music running in every mode.
	ambient *ecs.Scheduler

	input  *system.InputSystem
	render *system.RenderSystem

	manifest   *levels.Manifest
	levelIndex int

	debug bool
	dev   bool

	menuUI     *ebitenui.UI
	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
	victoryUI  *ebitenui.UI

	startRequested bool
	quitRequested  bool

	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, dev bool) (*Game, error) {
	manifest, err := levels.LoadManifest()
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	if len(manifest.Levels) == 0 {
		return nil, fmt.Errorf("manifest has no levels")
	}

	g := &Game{
		manifest: manifest,
		debug:    debug,
		dev:      dev,
	}

	if levelName != "" {
		found := false
		for i, entry := range manifest.Levels {
			if entry.Name == levelName {
				g.levelIndex = i
				found = true
				break
			}
		}
		if !found {
			log.Printf("unknown level %q, starting from %q", levelName, manifest.Levels[0].Name)
		}
	}

	g.input = system.NewInputSystem()
	g.render = system.NewRenderSystem(internalWidth, internalHeight, raycast.LoadAtlas(filepath.Join("assets", "textures")), 1)
	g.render.SetDebug(debug)
	g.ambient = ecs.NewScheduler(system.NewAudioSystem(), system.NewMusicSystem())

	g.world = ecs.NewWorld()
	if _, err := entity.NewMusicPlayer(g.world); err != nil {
		return nil, err
	}
	if manifest.MenuMusic != "" {
		system.RequestMusic(g.world, manifest.MenuMusic)
	}

	g.menuUI = newMenuUI(g)
	g.pauseUI = newPauseUI(g)
	g.gameOverUI = newEndUI(g, "Game Over", "Retry")
	g.victoryUI = newEndUI(g, "Victory!", "Play Again")

	if dev {
		watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"), "levels")
		if err != nil {
			log.Printf("dev reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// Shutdown releases streamed audio and the dev watcher. Safe to call after
// RunGame returns regardless of how the session ended.
func (g *Game) Shutdown() {
	if g == nil {
		return
	}
	system.ReleaseMusic(g.world)
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// startLevel rebuilds the world for the manifest level at index, carrying
// music playback across so the game track is not interrupted.
func (g *Game) startLevel(index int) error {
	var musicState *component.MusicPlayer
	if ent, ok := ecs.First(g.world, component.MusicPlayerComponent.Kind()); ok {
		if mp, has := ecs.Get(g.world, ent, component.MusicPlayerComponent.Kind()); has {
			musicState = mp
		}
	}

	w := ecs.NewWorld()
	if _, err := entity.NewMusicPlayerFromState(w, musicState); err != nil {
		return err
	}
	if err := entity.BuildLevel(w, g.manifest, index); err != nil {
		return err
	}

	g.world = w
	g.levelIndex = index
	g.scheduler = ecs.NewScheduler(
		g.input,
		system.NewPlayerControllerSystem(),
		system.NewChaserSystem(),
		system.NewPickupCollectSystem(),
		system.NewTTLSystem(),
	)

	if track := g.manifest.Levels[index].Music; track != "" {
		system.RequestMusic(g.world, track)
	}
	return nil
}

func (g *Game) begin(index int) error {
	if err := g.startLevel(index); err != nil {
		return err
	}
	if ent, ok := ecs.First(g.world, component.PlayerComponent.Kind()); ok {
		if audioComp, has := ecs.Get(g.world, ent, component.AudioComponent.Kind()); has {
			audioComp.TriggerSound("select")
		}
	}
	g.mode = ModePlaying
	return nil
}

// exit releases every loaded music player before terminating.
func (g *Game) exit() error {
	system.ReleaseMusic(g.world)
	return ebiten.Termination
}

func (g *Game) Update() error {
	g.ambient.Update(g.world)

	confirm := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || g.startRequested
	quit := inpututil.IsKeyJustPressed(ebiten.KeyQ) || g.quitRequested
	g.startRequested = false
	g.quitRequested = false

	switch g.mode {
	case ModeMenu:
		g.menuUI.Update()
		if quit {
			return g.exit()
		}
		if confirm {
			return g.begin(g.levelIndex)
		}

	case ModePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.mode = ModePaused
			return nil
		}
		g.scheduler.Update(g.world)
		g.pollReload()
		for _, evt := range g.world.Events().Drain() {
			switch evt.Kind {
			case ecs.EventPlayerCaught:
				g.mode = ModeGameOver
				g.input.Release()
				system.StopMusic(g.world)
			case ecs.EventLevelCleared:
				next := g.levelIndex + 1
				if next >= len(g.manifest.Levels) {
					g.mode = ModeVictory
					g.input.Release()
					system.StopMusic(g.world)
				} else if err := g.startLevel(next); err != nil {
					return err
				}
			}
		}

	case ModePaused:
		g.pauseUI.Update()
		if quit {
			return g.exit()
		}
		if confirm || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.mode = ModePlaying
		}

	case ModeGameOver:
		g.gameOverUI.Update()
		if quit {
			return g.exit()
		}
		if confirm {
			return g.begin(g.levelIndex)
		}

	case ModeVictory:
		g.victoryUI.Update()
		if quit {
			return g.exit()
		}
		if confirm {
			return g.begin(0)
		}
	}

	return nil
}

// pollReload rebuilds the current level when a watched prefab, script or
// level file changes on disk.
func (g *Game) pollReload() {
	if g.watcher == nil {
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
			log.Printf("dev reload: %s", name)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			if err != nil {
				log.Printf("dev watch: %v", err)
			}
		default:
			if reload {
				if err := g.startLevel(g.levelIndex); err != nil {
					log.Printf("dev reload failed: %v", err)
				}
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeMenu:
		screen.Fill(menuBackground)
		g.menuUI.Draw(screen)
	case ModePlaying:
		g.render.Draw(g.world, screen)
	case ModePaused:
		g.render.Draw(g.world, screen)
		g.pauseUI.Draw(screen)
	case ModeGameOver:
		g.render.Draw(g.world, screen)
		g.gameOverUI.Draw(screen)
	case ModeVictory:
		screen.Fill(menuBackground)
		g.victoryUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
