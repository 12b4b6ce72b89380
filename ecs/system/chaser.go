package system

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/levels"
)

// captureRadius is how close a chaser must get to catch the player.
const captureRadius = levels.BlockSize / 4

// ChaserSystem drives maze enemies. A scripted FSM decides whether each
// chaser is hunting; a hunting chaser walks straight at the player while it
// has line of sight and falls back to breadth-first pathfinding around
// corners. Reaching the player raises EventPlayerCaught.
type ChaserSystem struct {
	scripts map[ecs.Entity]*chaserScriptRuntime
}

func NewChaserSystem() *ChaserSystem {
	return &ChaserSystem{}
}

func (c *ChaserSystem) Update(w *ecs.World) {
	if w == nil {
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
	playerTransform, ok := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	if !ok || playerTransform == nil {
		return
	}
	playerCell := maze.CellAt(playerTransform.Pos.X, playerTransform.Pos.Y)

	ecs.ForEach2(w, component.ChaserComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, chaser *component.Chaser, t *component.Transform) {
		if chaser == nil || t == nil {
			return
		}

		chaserCell := maze.CellAt(t.Pos.X, t.Pos.Y)
		hasLOS := LineOfSight(maze, chaserCell, playerCell)
		dist := t.Pos.Distance(playerTransform.Pos)

		c.runScript(w, e, chaser, hasLOS, dist)

		if chaser.State != component.ChaserStateHunt {
			return
		}

		target := playerTransform.Pos
		if !hasLOS {
			step, found := NextStep(maze, chaserCell, playerCell)
			if !found {
				return
			}
			tx, ty := step.Center()
			target = cp.Vector{X: tx, Y: ty}
		}

		delta := target.Sub(t.Pos)
		if length := delta.Length(); length > chaser.Speed {
			delta = delta.Mult(chaser.Speed / length)
		}
		t.Pos = slideMove(maze, t.Pos, delta)
		t.Angle = delta.ToAngle()

		if t.Pos.Distance(playerTransform.Pos) <= captureRadius {
			if audioComp, has := ecs.Get(w, e, component.AudioComponent.Kind()); has {
				audioComp.TriggerSound("caught")
			}
			w.Events().Push(ecs.Event{Kind: ecs.EventPlayerCaught, Entity: e})
		}
	})
}

func (c *ChaserSystem) runScript(w *ecs.World, e ecs.Entity, chaser *component.Chaser, hasLOS bool, dist float64) {
	if chaser.Script == "" {
		// No script means the chaser hunts from the start.
		chaser.State = component.ChaserStateHunt
		return
	}

	rt, err := c.scriptRuntime(e, chaser.Script)
	if err != nil {
		log.Printf("chaser: entity=%s load script: %v", e, err)
		chaser.State = component.ChaserStateHunt
		return
	}

	state, err := rt.step(chaser.State, &chaserScriptContext{
		World:    w,
		Entity:   e,
		HasLOS:   hasLOS,
		Distance: dist,
	})
	if err != nil {
		log.Printf("chaser: entity=%s script: %v", e, err)
		return
	}
	chaser.State = state
}

func (c *ChaserSystem) scriptRuntime(e ecs.Entity, scriptPath string) (*chaserScriptRuntime, error) {
	if c.scripts == nil {
		c.scripts = map[ecs.Entity]*chaserScriptRuntime{}
	}
	if rt, ok := c.scripts[e]; ok && rt != nil && rt.scriptPath == scriptPath {
		return rt, nil
	}

	rt, err := newChaserScriptRuntime(scriptPath)
	if err != nil {
		return nil, err
	}
	c.scripts[e] = rt
	return rt, nil
}
