package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/frogquest/engine"
	"github.com/nathoo/frogquest/engine/save"
	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/logger"
	"github.com/nathoo/frogquest/types"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	defs := &state.Defs{
		Game:  types.GameDef{Title: "Test Pond", Intro: "Welcome to the test pond."},
		Names: []string{"Moss"},
		Scenarios: []types.ScenarioDef{
			{
				ID:          "calm",
				Title:       "A Calm Afternoon",
				Description: "The pond is still.",
				Choices: []types.ChoiceDef{
					{Label: "1", Text: "Comfort a tadpole", Handler: "comfort_tadpole"},
					{Label: "2", Text: "Find a route", Handler: "find_route"},
				},
			},
		},
	}
	log := logger.Discard()
	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"), log)
	return engine.New(defs, store, engine.Options{Seed: 3, Log: log})
}

// startedModel returns a sized model that has processed the opening step.
func startedModel(t *testing.T) Model {
	t.Helper()
	m := New(context.Background(), testEngine(t))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return update(t, m, m.begin()())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// submit types input, presses enter and runs the resulting step command.
func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		return m
	}
	msg := cmd()
	if done, ok := msg.(stepDoneMsg); ok {
		return update(t, m, done)
	}
	return m
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"[Game saved]", kindSystem},
		{"[trace] Effects: 2", kindTrace},
		{"✨ The Mysterious Pond ✨", kindHeading},
		{"Meet Lily the Glass Frog!", kindHeading},
		{"1. Go on an adventure", kindMenu},
		{"3. Comfort the tadpole", kindMenu},
		{"🏁 Adventure complete! (2 total)", kindGood},
		{"💾 Game saved!", kindGood},
		{"+ ✨ Glowing Pearl", kindGood},
		{"Lily is too tired for an adventure!", kindWarning},
		{"Save failed: disk full", kindWarning},
		{"Invalid choice. Please enter a number from 1 to 6.", kindWarning},
		{"You dive into the sparkling water...", kindNarrative},
		{"", kindNarrative},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsMenuLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1. Rest", true},
		{"12. Something", true},
		{"123. Too long", false},
		{"A. Letter", false},
		{". Nothing", false},
		{"Energy restored to 80.", false},
	}
	for _, tt := range tests {
		if got := isMenuLine(tt.line); got != tt.want {
			t.Errorf("isMenuLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestMeter(t *testing.T) {
	tests := []struct {
		v    int
		full int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{50, 5},
		{96, 10},
		{100, 10},
		{150, 10},
		{-20, 0},
	}
	for _, tt := range tests {
		bar := meter(tt.v)
		if got := strings.Count(bar, "█"); got != tt.full {
			t.Errorf("meter(%d) filled = %d, want %d", tt.v, got, tt.full)
		}
		if w := lipgloss.Width(bar); w != meterCells {
			t.Errorf("meter(%d) width = %d, want %d", tt.v, w, meterCells)
		}
	}
}

func TestDisplayType(t *testing.T) {
	custom := &types.Frog{Archetype: types.Custom, Species: "midnight moss frog"}
	if got := displayType(custom); got != "Midnight Moss Frog" {
		t.Errorf("displayType(custom) = %q", got)
	}
	tree := &types.Frog{Archetype: types.TreeFrog}
	if got := displayType(tree); got != "Tree Frog" {
		t.Errorf("displayType(tree) = %q", got)
	}
}

func TestModel_OpeningStep(t *testing.T) {
	m := startedModel(t)

	if m.busy {
		t.Error("model still busy after opening step")
	}
	if m.snap.frog == nil || m.snap.frog.Name != "Moss" {
		t.Fatalf("snapshot frog = %+v", m.snap.frog)
	}
	view := m.View()
	if !strings.Contains(view, "Moss the") {
		t.Errorf("status bar missing frog name:\n%s", view)
	}
	if !strings.Contains(view, "(1-6)") {
		t.Errorf("prompt missing:\n%s", view)
	}
}

func TestModel_FeedUpdatesSnapshot(t *testing.T) {
	m := startedModel(t)
	m = submit(t, m, "3")

	if m.snap.frog.Happiness != 70 {
		t.Errorf("snapshot happiness = %d, want 70", m.snap.frog.Happiness)
	}
	if m.lastCmd != "3" {
		t.Errorf("lastCmd = %q, want 3", m.lastCmd)
	}
}

func TestModel_AdventureFlow(t *testing.T) {
	m := startedModel(t)
	m = submit(t, m, "1")
	if m.snap.mode != types.ModeScenario {
		t.Fatalf("mode = %v, want scenario", m.snap.mode)
	}
	m = submit(t, m, "2")
	if m.snap.adventures != 1 {
		t.Errorf("adventures = %d, want 1", m.snap.adventures)
	}
	if !strings.Contains(m.View(), "Adv:1") {
		t.Error("status bar should show the adventure count")
	}
}

func TestModel_BusyIgnoresEnter(t *testing.T) {
	m := startedModel(t)
	m.busy = true
	m.input.SetValue("3")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter while busy should not start a step")
	}
	if next.(Model).input.Value() != "3" {
		t.Error("input should be kept while busy")
	}
}

func TestModel_SnapshotIsACopy(t *testing.T) {
	m := startedModel(t)
	m.engine.State.Frog.Energy = 1
	if m.snap.frog.Energy == 1 {
		t.Error("snapshot shares the engine's frog")
	}
}

func TestModel_QuitMeta(t *testing.T) {
	m := startedModel(t)
	m.input.SetValue("/quit")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(Model).quitting {
		t.Error("expected quitting")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_ExitFlowQuits(t *testing.T) {
	m := startedModel(t)
	m = submit(t, m, "6")
	m.input.SetValue("n")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	done := cmd().(stepDoneMsg)
	next, cmd = m.Update(done)
	if !next.(Model).quitting {
		t.Error("expected quitting after declining to save")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestModel_MetaCommands(t *testing.T) {
	m := startedModel(t)
	for _, input := range []string{"/help", "/status", "/journal", "/trace", "/bogus"} {
		m = submit(t, m, input)
	}

	var text []string
	for _, rl := range m.rawLines {
		text = append(text, rl.text)
	}
	out := strings.Join(text, "\n")
	for _, want := range []string{"/journal", "RNG position", "hatched", "Trace output enabled", "Unknown command"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestModel_WrapsToWidth(t *testing.T) {
	m := New(context.Background(), testEngine(t))
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 40})
	m = m.appendOutput("", []string{"The pond shimmers with a strange light as you approach the water."}, false)

	for _, line := range strings.Split(m.viewport.View(), "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line wider than viewport (%d): %q", w, line)
		}
	}
}

func TestModel_NoticesShownFirst(t *testing.T) {
	m := New(context.Background(), testEngine(t), "Generative frogs are off.")
	if len(m.rawLines) == 0 || m.rawLines[0].text != "Generative frogs are off." || !m.rawLines[0].isSystem {
		t.Errorf("rawLines = %+v", m.rawLines)
	}
}
