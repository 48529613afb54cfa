package main

import (
	"testing"

	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

func TestFollowingLevel(t *testing.T) {
	names := []string{"level1", "level2", "level3"}
	cases := []struct {
		current string
		want    string
	}{
		{"level1", "level2"},
		{"level3", "level1"},
		{"custom", "level1"},
	}
	for _, c := range cases {
		t.Run(c.current, func(t *testing.T) {
			if got := followingLevel(names, c.current); got != c.want {
				t.Fatalf("followingLevel(%q) = %q, want %q", c.current, got, c.want)
			}
		})
	}
	if got := followingLevel(nil, "level1"); got != "level1" {
		t.Fatalf("empty list should keep the current level, got %q", got)
	}
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	state := &component.LevelState{Name: "level1"}
	if err := ecs.Add(w, e, component.LevelStateComponent.Kind(), state); err != nil {
		t.Fatal(err)
	}
	s := &session{world: w}

	if restartAllowed(s) {
		t.Fatalf("R must not restart a level that is still being played")
	}
	state.GameOver = true
	if !restartAllowed(s) {
		t.Fatalf("R should restart once the level is over")
	}
	if restartAllowed(nil) {
		t.Fatalf("no session, nothing to restart")
	}
	if restartAllowed(&session{world: ecs.NewWorld()}) {
		t.Fatalf("a world without level state cannot be restarted")
	}
}
