package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nathoo/frogquest/engine/events"
	"github.com/nathoo/frogquest/engine/save"
	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/logger"
	"github.com/nathoo/frogquest/types"
)

// testDefs builds a small catalog: one scenario whose choices do not draw
// randomness, and one that does.
func testDefs() *state.Defs {
	return &state.Defs{
		Game:  types.GameDef{Title: "Test Pond", Intro: "Welcome to the test pond."},
		Names: []string{"Ribbit", "Lily", "Moss"},
		Scenarios: []types.ScenarioDef{
			{
				ID:          "calm",
				Title:       "A Calm Afternoon",
				Description: "Nothing much is happening.",
				Choices: []types.ChoiceDef{
					{Label: "1", Text: "Comfort a tadpole", Handler: "comfort_tadpole"},
					{Label: "2", Text: "Find a route", Handler: "find_route"},
				},
			},
		},
	}
}

func randomDefs() *state.Defs {
	defs := testDefs()
	defs.Scenarios = append(defs.Scenarios, types.ScenarioDef{
		ID:          "pond",
		Title:       "The Mysterious Pond",
		Description: "A glowing pond.",
		Choices: []types.ChoiceDef{
			{Label: "1", Text: "Dive", Handler: "pond_dive"},
			{Label: "2", Text: "Use ability", Handler: "use_ability"},
			{Label: "3", Text: "Look around", Handler: "investigate_area"},
		},
	})
	return defs
}

func quietLogger() *slog.Logger {
	return logger.Discard()
}

func newTestEngine(t *testing.T, defs *state.Defs) *Engine {
	t.Helper()
	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"), quietLogger())
	return New(defs, store, Options{Seed: 42, Log: quietLogger()})
}

// started returns an engine already past Begin with a fresh frog.
func started(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t, testDefs())
	e.Begin(context.Background())
	if e.State.Mode != types.ModeIdle {
		t.Fatalf("mode after Begin = %v, want idle", e.State.Mode)
	}
	return e
}

func outputContains(output []string, substr string) bool {
	for _, line := range output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func copyFrog(f *types.Frog) types.Frog {
	c := *f
	c.Items = append([]string(nil), f.Items...)
	return c
}

func TestBegin_NoSave_HatchesFrog(t *testing.T) {
	e := newTestEngine(t, testDefs())
	result := e.Begin(context.Background())

	f := e.State.Frog
	if f == nil {
		t.Fatal("no frog after Begin")
	}
	if f.Energy != 100 || f.Happiness != 50 {
		t.Errorf("new frog stats = %d/%d, want 100/50", f.Energy, f.Happiness)
	}
	if e.State.Adventures != 0 {
		t.Errorf("adventures = %d, want 0", e.State.Adventures)
	}
	if !outputContains(result.Output, "Welcome to the test pond.") {
		t.Errorf("intro missing: %v", result.Output)
	}
	if !outputContains(result.Output, "Meet "+f.Name) {
		t.Errorf("frog introduction missing: %v", result.Output)
	}
	if e.Journal.Len() != 1 || e.Journal.Entries()[0].Kind != events.KindHatch {
		t.Errorf("journal = %+v, want one hatch entry", e.Journal.Entries())
	}
}

func TestBegin_WithSave_Resume(t *testing.T) {
	e := newTestEngine(t, testDefs())
	saved := &types.Frog{
		Name: "Puddle", Archetype: types.GlassFrog, Ability: "Near invisibility",
		Description: "See-through", Energy: 40, Happiness: 75, Items: []string{"🌟 Stardust"},
	}
	if err := e.Store.Write(saved, 7); err != nil {
		t.Fatal(err)
	}

	result := e.Begin(context.Background())
	if e.State.Mode != types.ModeResume {
		t.Fatalf("mode = %v, want resume", e.State.Mode)
	}
	if !outputContains(result.Output, "Found a saved game") {
		t.Errorf("output = %v", result.Output)
	}

	e.Step(context.Background(), "1")
	if e.State.Mode != types.ModeIdle {
		t.Fatalf("mode after continue = %v, want idle", e.State.Mode)
	}
	if !reflect.DeepEqual(*e.State.Frog, *saved) {
		t.Errorf("frog = %+v, want %+v", *e.State.Frog, *saved)
	}
	if e.State.Adventures != 7 {
		t.Errorf("adventures = %d, want 7", e.State.Adventures)
	}
}

func TestResume_InvalidAnswerReprompts(t *testing.T) {
	e := newTestEngine(t, testDefs())
	if err := e.Store.Write(&types.Frog{Name: "Dew", Archetype: types.RainFrog, Items: []string{}}, 2); err != nil {
		t.Fatal(err)
	}
	e.Begin(context.Background())

	e.Step(context.Background(), "maybe")
	if e.State.Mode != types.ModeResume {
		t.Errorf("mode = %v, want resume", e.State.Mode)
	}
	if e.State.Adventures != 2 {
		t.Errorf("adventures = %d, want 2", e.State.Adventures)
	}
}

func TestResume_NewResetsCounter(t *testing.T) {
	e := newTestEngine(t, testDefs())
	if err := e.Store.Write(&types.Frog{Name: "Dew", Archetype: types.RainFrog, Items: []string{}}, 5); err != nil {
		t.Fatal(err)
	}
	e.Begin(context.Background())

	e.Step(context.Background(), "2")
	if e.State.Adventures != 0 {
		t.Errorf("adventures = %d, want 0", e.State.Adventures)
	}
	if e.State.Frog == nil || e.State.Frog.Energy != 100 {
		t.Errorf("expected a fresh frog, got %+v", e.State.Frog)
	}
	if e.State.Mode != types.ModeIdle {
		t.Errorf("mode = %v, want idle", e.State.Mode)
	}
}

func TestStep_ModeStartBegins(t *testing.T) {
	e := newTestEngine(t, testDefs())
	e.Step(context.Background(), "")
	if e.State.Frog == nil || e.State.Mode != types.ModeIdle {
		t.Errorf("Step in start mode should begin the session, mode = %v", e.State.Mode)
	}
}

func TestRest(t *testing.T) {
	tests := []struct {
		before, after int
		full          bool
	}{
		{100, 100, true},
		{85, 100, false},
		{50, 80, false},
		{0, 30, false},
	}

	for _, tt := range tests {
		e := started(t)
		e.State.Frog.Energy = tt.before
		result := e.Rest()
		if e.State.Frog.Energy != tt.after {
			t.Errorf("rest at %d: energy = %d, want %d", tt.before, e.State.Frog.Energy, tt.after)
		}
		if got := outputContains(result.Output, "already"); got != tt.full {
			t.Errorf("rest at %d: already-rested message = %v, want %v (%v)", tt.before, got, tt.full, result.Output)
		}
	}
}

func TestFeed_Clamps(t *testing.T) {
	e := started(t)
	e.State.Frog.Happiness = 90
	e.Step(context.Background(), "3")
	if e.State.Frog.Happiness != 100 {
		t.Errorf("happiness = %d, want 100", e.State.Frog.Happiness)
	}

	e.State.Frog.Happiness = 10
	e.Feed()
	if e.State.Frog.Happiness != 30 {
		t.Errorf("happiness = %d, want 30", e.State.Frog.Happiness)
	}
}

func TestAdventureGate(t *testing.T) {
	e := started(t)
	e.State.Frog.Energy = 19
	result := e.Step(context.Background(), "1")
	if e.State.Mode != types.ModeIdle {
		t.Errorf("energy 19: mode = %v, want idle", e.State.Mode)
	}
	if !outputContains(result.Output, "too tired") {
		t.Errorf("energy 19: output = %v", result.Output)
	}

	e.State.Frog.Energy = 20
	e.Step(context.Background(), "1")
	if e.State.Mode != types.ModeScenario {
		t.Errorf("energy 20: mode = %v, want scenario", e.State.Mode)
	}
	if e.State.Scenario == nil {
		t.Error("energy 20: no pending scenario")
	}
}

func TestChoose_CompletesScenario(t *testing.T) {
	e := started(t)
	e.Step(context.Background(), "1")

	result := e.Step(context.Background(), "1")
	if e.State.Adventures != 1 {
		t.Errorf("adventures = %d, want 1", e.State.Adventures)
	}
	if e.State.Mode != types.ModeIdle || e.State.Scenario != nil {
		t.Errorf("mode = %v scenario = %v, want idle/nil", e.State.Mode, e.State.Scenario)
	}
	if e.State.Frog.Happiness != 70 {
		t.Errorf("happiness = %d, want 70", e.State.Frog.Happiness)
	}
	if !outputContains(result.Output, "Adventure complete! (1 total)") {
		t.Errorf("output = %v", result.Output)
	}
	if e.Journal.Scenarios() != 1 {
		t.Errorf("journal scenarios = %d, want 1", e.Journal.Scenarios())
	}

	e.Step(context.Background(), "1")
	e.Step(context.Background(), "2")
	if e.State.Adventures != 2 {
		t.Errorf("adventures = %d, want 2", e.State.Adventures)
	}
}

func TestChoose_UnknownLabelDoesNotMutate(t *testing.T) {
	e := started(t)
	e.Step(context.Background(), "1")
	before := copyFrog(e.State.Frog)

	for _, input := range []string{"9", "dive", ""} {
		e.Step(context.Background(), input)
	}
	if e.State.Mode != types.ModeScenario {
		t.Errorf("mode = %v, want scenario", e.State.Mode)
	}
	if !reflect.DeepEqual(*e.State.Frog, before) {
		t.Errorf("frog changed: %+v, want %+v", *e.State.Frog, before)
	}
	if e.State.Adventures != 0 {
		t.Errorf("adventures = %d, want 0", e.State.Adventures)
	}
}

func TestChoose_OutsideScenario(t *testing.T) {
	e := started(t)
	before := copyFrog(e.State.Frog)
	e.Choose("1")
	if e.State.Adventures != 0 || !reflect.DeepEqual(*e.State.Frog, before) {
		t.Error("Choose outside a scenario mutated state")
	}
}

func TestIdle_UnknownInputDoesNotMutate(t *testing.T) {
	e := started(t)
	before := copyFrog(e.State.Frog)

	result := e.Step(context.Background(), "7")
	if !outputContains(result.Output, "Invalid choice") {
		t.Errorf("output = %v", result.Output)
	}
	if e.State.Mode != types.ModeIdle || !reflect.DeepEqual(*e.State.Frog, before) {
		t.Error("unknown input changed state")
	}
}

func TestSwitch_PreservesCounter(t *testing.T) {
	e := started(t)
	e.State.Adventures = 4
	old := e.State.Frog
	old.Energy = 10

	e.Step(context.Background(), "5")
	if e.State.Adventures != 4 {
		t.Errorf("adventures = %d, want 4", e.State.Adventures)
	}
	if e.State.Frog == old {
		t.Error("frog was not replaced")
	}
	if e.State.Frog.Energy != 100 {
		t.Errorf("new frog energy = %d, want 100", e.State.Frog.Energy)
	}
}

func TestRestart_ResetsCounter(t *testing.T) {
	e := started(t)
	e.State.Adventures = 4

	e.Restart(context.Background())
	if e.State.Adventures != 0 {
		t.Errorf("adventures = %d, want 0", e.State.Adventures)
	}
	if e.State.Frog == nil {
		t.Error("no frog after restart")
	}
}

func TestSave_WritesStore(t *testing.T) {
	e := started(t)
	e.State.Adventures = 3
	result := e.Step(context.Background(), "4")
	if !outputContains(result.Output, "saved") {
		t.Errorf("output = %v", result.Output)
	}

	rec, ok := e.Store.Read()
	if !ok {
		t.Fatal("no save written")
	}
	if rec.Adventures != 3 || rec.Frog.Name != e.State.Frog.Name {
		t.Errorf("record = %+v", rec)
	}
}

func TestSave_FailureReported(t *testing.T) {
	e := started(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	e.Store.Path = filepath.Join(blocker, "save.json")

	result := e.Save()
	if !outputContains(result.Output, "Save failed") {
		t.Errorf("output = %v", result.Output)
	}
	if result.Quit {
		t.Error("save failure must not quit")
	}
}

func TestExit_SaveYes(t *testing.T) {
	e := started(t)
	e.Step(context.Background(), "6")
	if e.State.Mode != types.ModeConfirmExit {
		t.Fatalf("mode = %v, want confirm exit", e.State.Mode)
	}

	result := e.Step(context.Background(), "perhaps")
	if result.Quit || e.State.Mode != types.ModeConfirmExit {
		t.Error("unclear answer should re-prompt")
	}

	result = e.Step(context.Background(), "y")
	if !result.Quit || e.State.Mode != types.ModeDone {
		t.Errorf("quit = %v mode = %v", result.Quit, e.State.Mode)
	}
	if !e.Store.Exists() {
		t.Error("answering y should save")
	}
}

func TestExit_SaveNo(t *testing.T) {
	e := started(t)
	e.Step(context.Background(), "6")
	result := e.Step(context.Background(), "n")
	if !result.Quit {
		t.Error("expected quit")
	}
	if e.Store.Exists() {
		t.Error("answering n should not save")
	}
	if r := e.Step(context.Background(), "1"); !r.Quit {
		t.Error("done session should keep reporting quit")
	}
}

func TestClampInvariant_RandomSequence(t *testing.T) {
	e := newTestEngine(t, randomDefs())
	e.Begin(context.Background())

	picker := NewRNG(7)
	inputs := []string{"1", "2", "3", "4", "5", "1", "1", "bogus"}
	for i := 0; i < 1000; i++ {
		var input string
		if e.State.Mode == types.ModeScenario {
			input = []string{"1", "2", "3", "x"}[picker.Intn(4)]
		} else {
			input = inputs[picker.Intn(len(inputs))]
		}
		e.Step(context.Background(), input)

		f := e.State.Frog
		if f.Energy < 0 || f.Energy > 100 || f.Happiness < 0 || f.Happiness > 100 {
			t.Fatalf("step %d (%q): stats out of range: energy=%d happiness=%d", i, input, f.Energy, f.Happiness)
		}
		if e.State.Adventures < 0 {
			t.Fatalf("step %d: negative counter", i)
		}
	}
}

func TestSameSeed_SameFrog(t *testing.T) {
	a := newTestEngine(t, testDefs())
	b := newTestEngine(t, testDefs())
	a.Begin(context.Background())
	b.Begin(context.Background())

	if a.State.Frog.Name != b.State.Frog.Name || a.State.Frog.Archetype != b.State.Frog.Archetype {
		t.Errorf("same seed gave %s/%v and %s/%v",
			a.State.Frog.Name, a.State.Frog.Archetype, b.State.Frog.Name, b.State.Frog.Archetype)
	}
}

func TestPrompt_FollowsMode(t *testing.T) {
	e := started(t)
	if !strings.Contains(e.Prompt(), "1-6") {
		t.Errorf("idle prompt = %q", e.Prompt())
	}
	e.Step(context.Background(), "1")
	if !strings.Contains(e.Prompt(), "1, 2") {
		t.Errorf("scenario prompt = %q", e.Prompt())
	}
}

func TestStatus(t *testing.T) {
	e := started(t)
	e.State.Frog.Items = []string{"🌟 Stardust"}
	e.State.Adventures = 2
	lines := e.Status()
	for _, want := range []string{e.State.Frog.Name, "Energy: 100/100", "🌟 Stardust", "Adventures completed: 2"} {
		if !outputContains(lines, want) {
			t.Errorf("status missing %q: %v", want, lines)
		}
	}
}
