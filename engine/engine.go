// Package engine provides the session controller that wires together
// parsing, frog hatching, scenario resolution, effects and persistence
// into a single turn.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nathoo/frogquest/engine/effects"
	"github.com/nathoo/frogquest/engine/events"
	"github.com/nathoo/frogquest/engine/hatch"
	"github.com/nathoo/frogquest/engine/parser"
	"github.com/nathoo/frogquest/engine/save"
	"github.com/nathoo/frogquest/engine/scenario"
	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

// Resource deltas for the direct maintenance actions.
const (
	RestEnergy    = 30
	FeedHappiness = 20
)

// Options configures a new Engine.
type Options struct {
	Seed   int64        // 0 picks a time-based seed
	Source hatch.Source // optional generative frog source
	Log    *slog.Logger
}

// Engine holds the game definitions, the session context and its
// collaborators.
type Engine struct {
	Defs    *state.Defs
	State   *types.State
	RNG     *RNG
	Hatch   *hatch.Generator
	Store   *save.Store
	Journal *events.Log
	Log     *slog.Logger
}

// New creates an engine with no frog. Call Begin to start the session.
func New(defs *state.Defs, store *save.Store, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	rng := NewRNG(seed)
	return &Engine{
		Defs:  defs,
		State: state.NewState(seed),
		RNG:   rng,
		Hatch: &hatch.Generator{
			Names:  defs.Names,
			Rand:   rng,
			Source: opts.Source,
			Log:    log,
		},
		Store:   store,
		Journal: events.NewLog(),
		Log:     log,
	}
}

// Begin looks for a saved game. With one, the session waits for the
// continue/new answer; without one, a fresh frog is hatched.
func (e *Engine) Begin(ctx context.Context) types.Result {
	var result types.Result

	intro := e.Defs.Game.Intro
	if intro == "" {
		intro = e.Defs.Game.Title
	}
	result.Output = append(result.Output, intro, "")

	if rec, ok := e.Store.Read(); ok {
		f := rec.Frog
		e.State.Frog = &f
		e.State.Adventures = rec.Adventures
		e.State.Mode = types.ModeResume
		e.Log.Debug("save found", "frog", f.Name, "adventures", rec.Adventures)

		result.Output = append(result.Output, "📂 Found a saved game!")
		result.Output = append(result.Output, e.Status()...)
		result.Output = append(result.Output, "", "1. Continue with "+f.Name, "2. Start a new adventure")
		return result
	}

	e.State.Adventures = 0
	result.Output = append(result.Output, e.hatchFrog(ctx)...)
	e.State.Mode = types.ModeIdle
	return result
}

// Step processes one line of player input and returns the result.
func (e *Engine) Step(ctx context.Context, input string) types.Result {
	if e.State.Mode == types.ModeStart {
		return e.Begin(ctx)
	}

	intent := parser.Parse(e.State.Mode, input)

	switch e.State.Mode {
	case types.ModeResume:
		return e.stepResume(ctx, intent)
	case types.ModeIdle:
		return e.stepIdle(ctx, intent)
	case types.ModeScenario:
		return e.Choose(intent.Object)
	case types.ModeConfirmExit:
		return e.stepConfirmExit(intent)
	default:
		return types.Result{Quit: true}
	}
}

func (e *Engine) stepResume(ctx context.Context, intent types.Intent) types.Result {
	switch intent.Verb {
	case parser.VerbContinue:
		e.State.Mode = types.ModeIdle
		return types.Result{Output: []string{
			fmt.Sprintf("Welcome back, %s! %s", e.State.Frog.Name, state.Mood(e.State.Frog)),
		}}
	case parser.VerbNew:
		return e.Restart(ctx)
	default:
		return reprompt("Please enter 1 to continue or 2 to start new.")
	}
}

func (e *Engine) stepIdle(ctx context.Context, intent types.Intent) types.Result {
	switch intent.Verb {
	case parser.VerbAdventure:
		return e.StartAdventure()
	case parser.VerbRest:
		return e.Rest()
	case parser.VerbFeed:
		return e.Feed()
	case parser.VerbSave:
		return e.Save()
	case parser.VerbSwitch:
		return e.SwitchFrog(ctx)
	case parser.VerbExit:
		e.State.Mode = types.ModeConfirmExit
		return types.Result{Output: []string{"Save before exiting? (y/n)"}}
	default:
		return reprompt("Invalid choice. Please enter a number from 1 to 6.")
	}
}

func (e *Engine) stepConfirmExit(intent types.Intent) types.Result {
	var result types.Result
	switch intent.Verb {
	case parser.VerbYes:
		result = e.Save()
	case parser.VerbNo:
	default:
		return reprompt("Please answer y or n.")
	}
	e.State.Mode = types.ModeDone
	result.Output = append(result.Output, "Thanks for playing! Goodbye! 🐸")
	result.Quit = true
	return result
}

// Rest restores energy. A fully rested frog is left unchanged.
func (e *Engine) Rest() types.Result {
	f := e.State.Frog
	if f == nil {
		return reprompt("There is no frog to rest.")
	}
	if f.Energy >= state.MaxResource {
		return types.Result{Output: []string{f.Name + " is already full of energy! ⚡"}}
	}

	result := e.apply(effects.SayText("{name} takes a peaceful nap on a lily pad... 😴"), effects.Energy(RestEnergy))
	result.Output = append(result.Output, fmt.Sprintf("Energy restored to %d.", f.Energy))
	e.record(events.KindAction, "rested", result)
	return result
}

// Feed raises happiness.
func (e *Engine) Feed() types.Result {
	f := e.State.Frog
	if f == nil {
		return reprompt("There is no frog to feed.")
	}

	result := e.apply(effects.SayText("{name} happily munches on some tasty flies! 🪰"), effects.Happiness(FeedHappiness))
	result.Output = append(result.Output, fmt.Sprintf("Happiness is now %d. %s", f.Happiness, state.Mood(f)))
	e.record(events.KindAction, "fed", result)
	return result
}

// StartAdventure picks a scenario and waits for a choice. Tired frogs stay home.
func (e *Engine) StartAdventure() types.Result {
	f := e.State.Frog
	if f == nil {
		return reprompt("There is no frog to go adventuring.")
	}
	if state.Tired(f) {
		return types.Result{Output: []string{
			fmt.Sprintf("%s is too tired for an adventure! (Energy: %d) Try resting first. 😴", f.Name, f.Energy),
		}}
	}

	sc := scenario.Pick(e.Defs, e.RNG)
	if sc == nil {
		return types.Result{Output: []string{"There are no adventures to be had today."}}
	}
	e.State.Scenario = sc
	e.State.Mode = types.ModeScenario
	return types.Result{Output: scenario.Intro(sc)}
}

// Choose resolves the pending scenario with the given choice label. An
// unknown label leaves everything as it was.
func (e *Engine) Choose(label string) types.Result {
	sc := e.State.Scenario
	if e.State.Mode != types.ModeScenario || sc == nil {
		return reprompt("There is no adventure in progress.")
	}

	result, err := scenario.Resolve(sc, label, e.State.Frog, e.RNG)
	if errors.Is(err, scenario.ErrUnknownChoice) {
		return reprompt(fmt.Sprintf("Please choose one of: %s.", labels(sc)))
	}
	if err != nil {
		e.Log.Error("scenario failed", "scenario", sc.ID, "error", err)
		e.State.Scenario = nil
		e.State.Mode = types.ModeIdle
		return types.Result{Output: []string{"Something went wrong on the adventure. You head home."}}
	}

	e.State.Adventures++
	e.State.Scenario = nil
	e.State.Mode = types.ModeIdle

	choice, _ := state.FindChoice(sc, label)
	e.Journal.Record(events.Entry{
		Kind:   events.KindScenario,
		Frog:   e.State.Frog.Name,
		Title:  sc.Title,
		Choice: choice.Text,
		Lines:  result.Output,
		Items:  events.ItemsFound(result.Events),
	})
	e.Log.Debug("scenario complete", "scenario", sc.ID, "choice", label, "adventures", e.State.Adventures)

	f := e.State.Frog
	result.Output = append(result.Output, "",
		fmt.Sprintf("🏁 Adventure complete! (%d total)", e.State.Adventures),
		fmt.Sprintf("Energy: %d | Happiness: %d %s", f.Energy, f.Happiness, state.Mood(f)),
	)
	return result
}

// Save writes the frog and counter through the store. Failures are
// reported in the output, never returned.
func (e *Engine) Save() types.Result {
	if e.State.Frog == nil {
		return types.Result{Output: []string{"Nothing to save yet."}}
	}
	if err := e.Store.Write(e.State.Frog, e.State.Adventures); err != nil {
		e.Log.Error("save failed", "path", e.Store.Path, "error", err)
		return types.Result{Output: []string{"Save failed: " + err.Error()}}
	}
	return types.Result{Output: []string{"💾 Game saved!"}}
}

// SwitchFrog replaces the frog with a newly hatched one. The adventure
// counter carries over.
func (e *Engine) SwitchFrog(ctx context.Context) types.Result {
	var result types.Result
	if f := e.State.Frog; f != nil {
		result.Output = append(result.Output, fmt.Sprintf("👋 %s hops off into the reeds.", f.Name))
	}
	result.Output = append(result.Output, e.hatchFrog(ctx)...)
	e.State.Scenario = nil
	e.State.Mode = types.ModeIdle
	return result
}

// Restart discards the frog and the counter and hatches a new frog.
func (e *Engine) Restart(ctx context.Context) types.Result {
	e.State.Adventures = 0
	e.State.Frog = nil
	e.State.Scenario = nil

	result := types.Result{Output: []string{"🌱 Starting fresh!"}}
	result.Output = append(result.Output, e.hatchFrog(ctx)...)
	e.State.Mode = types.ModeIdle
	return result
}

// hatchFrog installs a new frog and returns its introduction.
func (e *Engine) hatchFrog(ctx context.Context) []string {
	h := e.Hatch.Generate(ctx)
	f := h.Frog
	e.State.Frog = &f

	e.Journal.Record(events.Entry{Kind: events.KindHatch, Frog: f.Name, Title: "hatched as a " + f.DisplayType()})
	e.Log.Debug("frog hatched", "name", f.Name, "type", f.DisplayType(), "generated", h.Generated)

	lines := []string{"🥚 A new frog hatches!"}
	if h.Generated {
		lines[0] = "✨ A one-of-a-kind frog hatches!"
	}
	lines = append(lines,
		fmt.Sprintf("Meet %s the %s!", f.Name, f.DisplayType()),
		f.Description,
		"Special ability: "+f.Ability,
	)
	if f.Backstory != "" {
		lines = append(lines, f.Backstory)
	}
	return lines
}

// apply runs effects against the current frog.
func (e *Engine) apply(effs ...types.Effect) types.Result {
	evts, output := effects.Apply(e.State.Frog, effs)
	return types.Result{Effects: effs, Events: evts, Output: output}
}

func (e *Engine) record(kind, title string, result types.Result) {
	e.Journal.Record(events.Entry{
		Kind:  kind,
		Frog:  e.State.Frog.Name,
		Title: title,
		Lines: result.Output,
	})
}

func reprompt(msg string) types.Result {
	return types.Result{Output: []string{msg}}
}

func labels(sc *types.ScenarioDef) string {
	out := make([]string, len(sc.Choices))
	for i, c := range sc.Choices {
		out[i] = c.Label
	}
	return strings.Join(out, ", ")
}
