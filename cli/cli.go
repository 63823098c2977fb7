// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the frog adventure.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/frogquest/engine"
	"github.com/nathoo/frogquest/engine/events"
	"github.com/nathoo/frogquest/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool     // echo each input line after the prompt (for script playback)
	Notices   []string // printed as system messages before the session starts
	lastCmd   string   // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the session and loops: prompt → input → dispatch → output.
// It returns when the player exits, input ends, or ctx is cancelled.
func (c *CLI) Run(ctx context.Context) {
	for _, n := range c.Notices {
		c.printSystem(n)
	}
	c.printResult(c.Engine.Begin(ctx))

	lines := c.readLines(ctx)
	for {
		if ctx.Err() != nil {
			c.printLine("")
			return
		}
		c.showPrompt()
		var raw string
		var ok bool
		select {
		case <-ctx.Done():
			c.printLine("")
			return
		case raw, ok = <-lines:
		}
		if !ok {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(raw)
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(ctx, input)
		c.printResult(result)

		if c.Trace {
			for _, line := range events.FormatTrace(result.Effects, result.Events) {
				c.printLine(line)
			}
		}
		if result.Quit {
			return
		}
	}
}

// readLines scans c.In on its own goroutine so a blocked read never holds
// up cancellation. The channel closes at end of input.
func (c *CLI) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// showPrompt prints the menu when idle, then the mode's question.
func (c *CLI) showPrompt() {
	c.printLine("")
	if c.Engine.State.Mode == types.ModeIdle {
		for _, line := range engine.Menu() {
			c.printLine(line)
		}
	}
	if p := c.Engine.Prompt(); p != "" {
		c.printLine(p)
	}
	c.print("> ")
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	res := Meta(c.Engine, input)
	if res.ToggleTrace {
		c.Trace = !c.Trace
		res.Lines = append(res.Lines, TraceNotice(c.Trace))
	}
	for _, line := range res.Lines {
		if res.Notice {
			c.printSystem(line)
		} else {
			c.printLine(line)
		}
	}
	return res.Quit
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
