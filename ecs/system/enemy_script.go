package system

import (
	"fmt"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/phaseshift/levels"
)

// FireEnv is what a fire-condition script can read.
type FireEnv struct {
	DX       float64
	DY       float64
	Distance float64
	NowMs    int64
	Shield   int
	Health   int
}

// FireScripts compiles each fire-condition script once and reuses it.
type FireScripts struct {
	load func(name string) ([]byte, error)

	mu       sync.Mutex
	compiled map[string]*tengo.Compiled
}

func NewFireScripts() *FireScripts {
	return newFireScripts(levels.LoadScript)
}

func newFireScripts(load func(string) ([]byte, error)) *FireScripts {
	return &FireScripts{load: load, compiled: map[string]*tengo.Compiled{}}
}

// Invalidate drops a cached script so the next evaluation recompiles it.
func (f *FireScripts) Invalidate(name string) {
	if f == nil {
		return
	}
	name = strings.TrimSuffix(strings.TrimPrefix(name, "scripts/"), ".tengo")
	f.mu.Lock()
	delete(f.compiled, name)
	f.mu.Unlock()
}

// Fire runs script against env and returns its `fire` global.
func (f *FireScripts) Fire(script string, env FireEnv) (bool, error) {
	if f == nil {
		return false, fmt.Errorf("system: fire script %s: nil runtime", script)
	}
	compiled, err := f.get(script)
	if err != nil {
		return false, err
	}

	vars := map[string]any{
		"dx":       env.DX,
		"dy":       env.DY,
		"distance": env.Distance,
		"now":      env.NowMs,
		"shield":   env.Shield,
		"health":   env.Health,
		"fire":     false,
	}
	for name, v := range vars {
		if err := compiled.Set(name, v); err != nil {
			return false, fmt.Errorf("system: fire script %s: set %s: %w", script, name, err)
		}
	}
	if err := compiled.Run(); err != nil {
		return false, fmt.Errorf("system: fire script %s: %w", script, err)
	}
	return compiled.Get("fire").Bool(), nil
}

func (f *FireScripts) get(name string) (*tengo.Compiled, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.compiled[name]; ok {
		return c, nil
	}

	src, err := f.load(name)
	if err != nil {
		return nil, fmt.Errorf("system: load fire script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	for _, v := range []string{"dx", "dy", "distance", "now", "shield", "health"} {
		_ = script.Add(v, 0)
	}
	_ = script.Add("fire", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	c, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile fire script %s: %w", name, err)
	}
	f.compiled[name] = c
	return c, nil
}
