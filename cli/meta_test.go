package cli

import (
	"context"
	"strings"
	"testing"
)

func TestMeta(t *testing.T) {
	c, _ := newTestCLI(t, "")
	c.Engine.Begin(context.Background())

	tests := []struct {
		input  string
		quit   bool
		trace  bool
		notice bool
		want   string
	}{
		{"/quit", true, false, true, "Goodbye."},
		{"/exit", true, false, true, "Goodbye."},
		{"/help", false, false, false, "/journal"},
		{"/status", false, false, false, "Ribbit"},
		{"/state", false, false, false, "Seed 1, RNG position"},
		{"/journal", false, false, false, "hatched"},
		{"/save", false, false, false, "Game saved"},
		{"/trace", false, true, true, ""},
		{"/nope", false, false, true, "Unknown command: /nope"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Meta(c.Engine, tt.input)
			if res.Quit != tt.quit || res.ToggleTrace != tt.trace || res.Notice != tt.notice {
				t.Errorf("Meta(%q) = %+v", tt.input, res)
			}
			if tt.want != "" && !strings.Contains(strings.Join(res.Lines, "\n"), tt.want) {
				t.Errorf("Meta(%q) lines missing %q: %v", tt.input, tt.want, res.Lines)
			}
		})
	}
}

func TestMeta_Empty(t *testing.T) {
	c, _ := newTestCLI(t, "")
	if res := Meta(c.Engine, "   "); res.Quit || len(res.Lines) != 0 {
		t.Errorf("Meta(blank) = %+v", res)
	}
}

func TestTraceNotice(t *testing.T) {
	if !strings.Contains(TraceNotice(true), "enabled") || !strings.Contains(TraceNotice(false), "disabled") {
		t.Error("unexpected trace notice text")
	}
}
