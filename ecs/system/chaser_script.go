package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/prefabs"
)

// chaserScriptContext is the per-frame view of the world handed to a script.
type chaserScriptContext struct {
	World    *ecs.World
	Entity   ecs.Entity
	HasLOS   bool
	Distance float64
}

// chaserScriptRuntime holds a compiled tengo FSM for one chaser. Scripts
// define onEnter/update/onExit lifecycle functions and may set a global
// initial_state; the runtime dispatches the right one per phase.
type chaserScriptRuntime struct {
	scriptPath  string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	initial     component.ChaserState
	initialized bool
	pending     component.ChaserState
}

const chaserLifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

func newChaserScriptRuntime(scriptPath string) (*chaserScriptRuntime, error) {
	if strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("empty script path")
	}

	scriptBytes, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + chaserLifecycleDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &chaserScriptRuntime{
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
		initial:    component.ChaserStateIdle,
	}

	// Resolve optional initial state from script global `initial_state`.
	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := rt.runPhase("noop", rt.initial, noop); err != nil {
		return nil, err
	}
	if compiled.IsDefined("initial_state") {
		s := strings.TrimSpace(compiled.Get("initial_state").String())
		s = strings.Trim(s, "\"")
		if s != "" {
			rt.initial = component.ChaserState(s)
		}
	}

	return rt, nil
}

// step runs one frame of the FSM and returns the (possibly changed) state.
func (rt *chaserScriptRuntime) step(current component.ChaserState, ctx *chaserScriptContext) (component.ChaserState, error) {
	if rt == nil || rt.compiled == nil {
		return current, fmt.Errorf("nil script runtime")
	}

	if current == "" {
		current = rt.initial
	}

	engine := buildChaserScriptEngine(ctx, rt)
	if !rt.initialized {
		if err := rt.runPhase("enter", current, engine); err != nil {
			return current, fmt.Errorf("onEnter: %w", err)
		}
		rt.initialized = true
	}

	if err := rt.runPhase("update", current, engine); err != nil {
		return current, fmt.Errorf("update: %w", err)
	}

	if rt.pending == "" || rt.pending == current {
		rt.pending = ""
		return current, nil
	}

	prev := current
	if err := rt.runPhase("exit", prev, engine); err != nil {
		return current, fmt.Errorf("onExit: %w", err)
	}

	current = rt.pending
	rt.pending = ""

	if err := rt.runPhase("enter", current, engine); err != nil {
		return current, fmt.Errorf("onEnter: %w", err)
	}
	return current, nil
}

func (rt *chaserScriptRuntime) runPhase(phase string, current component.ChaserState, engine *tengo.ImmutableMap) error {
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__current_state", string(current)); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildChaserScriptEngine(ctx *chaserScriptContext, rt *chaserScriptRuntime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if rt == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		rt.pending = component.ChaserState(name)
		return tengo.TrueValue, nil
	}}

	values["has_los"] = &tengo.UserFunction{Name: "has_los", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx != nil && ctx.HasLOS {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["player_distance"] = &tengo.UserFunction{Name: "player_distance", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.Distance}, nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.World == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		ctx.World.Events().Push(ecs.Event{Kind: ecs.EventKind(name), Entity: ctx.Entity})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
