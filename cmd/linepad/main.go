// Linepad is a multi-buffer terminal scratchpad with shell-style input
// history and a fuzzy buffer picker.
// Usage: linepad [--version] [--plain] [--script <file>] [--config <file>] [files...]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathoo/linepad/cli"
	"github.com/nathoo/linepad/config"
	"github.com/nathoo/linepad/tui"
	"github.com/nathoo/linepad/workspace"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var scriptFile string
	var configFile string
	var files []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("linepad %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
		default:
			files = append(files, args[i])
		}
	}

	if configFile == "" {
		configFile = defaultConfigPath()
	}
	settings, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ws := workspace.New()
	for _, f := range files {
		if _, err := ws.Open(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", f, err)
			os.Exit(1)
		}
	}
	if ws.Len() == 0 {
		ws.NewScratch()
	} else {
		ws.SwitchTo(1)
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(ws, settings)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(ws, settings)
		c.Run()
		return
	}

	if err := tui.Run(ws, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultConfigPath returns ~/.config/linepad/config.lua.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.lua"
	}
	return filepath.Join(home, ".config", "linepad", "config.lua")
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
