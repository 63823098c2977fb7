// Frogquest is a small interactive fiction game about raising an adventurous frog.
// Usage: frogquest [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--save <path>]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/term"

	"github.com/nathoo/frogquest/cli"
	"github.com/nathoo/frogquest/config"
	"github.com/nathoo/frogquest/content"
	"github.com/nathoo/frogquest/engine"
	"github.com/nathoo/frogquest/engine/save"
	"github.com/nathoo/frogquest/llm"
	"github.com/nathoo/frogquest/loader"
	"github.com/nathoo/frogquest/logger"
	"github.com/nathoo/frogquest/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: frogquest [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--save <path>]"

func main() {
	plain := false
	trace := false
	var scriptFile, savePath string
	var seed int64

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("frogquest %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			scriptFile = flagValue(args, &i)
		case "--save":
			savePath = flagValue(args, &i)
		case "--seed":
			v, err := strconv.ParseInt(flagValue(args, &i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed: %v\n", err)
				os.Exit(1)
			}
			seed = v
		case "-h", "--help":
			fmt.Println(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n%s\n", args[i], usage)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if savePath != "" {
		cfg.SaveFile = savePath
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	useTUI := scriptFile == "" && !plain && term.IsTerminal(int(os.Stdout.Fd()))

	logOut, closeLog, err := logWriter(cfg, useTUI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log := logger.Setup(cfg, logOut)

	// Load and validate the embedded Lua content.
	defs, err := loader.Load(content.FS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := engine.Options{Seed: cfg.Seed, Log: log}
	var notices []string
	if cfg.AIEnabled() {
		client := llm.New(llm.Config{APIKey: cfg.APIKey, Model: cfg.Model, Timeout: cfg.AITimeout})
		opts.Source = client
		log.Debug("generative frogs enabled", "model", client.Model())
	} else {
		notices = append(notices, "OPENAI_API_KEY is not set. Frogs will hatch from the classic catalog.")
	}

	eng := engine.New(defs, save.NewStore(cfg.SaveFile, log), opts)
	log = logger.WithSession(log, eng.Journal.SessionID.String())
	eng.Log = log
	eng.Hatch.Log = log
	eng.Store.Log = log

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Notices = notices
		c.Run(ctx)
		return
	}

	if !useTUI {
		c := cli.New(eng)
		c.Trace = trace
		c.Notices = notices
		c.Run(ctx)
		return
	}

	if err := tui.Run(ctx, eng, notices...); err != nil {
		logger.WithError(log, err).Error("tui exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagValue returns the argument after args[*i] and advances i.
func flagValue(args []string, i *int) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a value\n", args[*i])
		os.Exit(1)
	}
	*i++
	return args[*i]
}

// logWriter picks where logs go. The TUI owns the terminal, so without a
// log file its logs are dropped.
func logWriter(cfg *config.Config, tuiMode bool) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	if tuiMode {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
