package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollwright/d20roll/internal/config"
	"github.com/rollwright/d20roll/internal/ui"
)

// githubRepo is the release source for version checks and self-update.
const githubRepo = "rollwright/d20roll"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			runVersion(githubRepo)
			return
		case "update":
			runUpdate(githubRepo)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\nfalling back to defaults\n", err)
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	app := ui.NewApp(cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`d20roll — dice roller for the terminal

Usage:
  d20roll            start the interactive roller
  d20roll version    print version and check for updates
  d20roll update     self-update to the latest release
  d20roll help       show this help

Config is read from ./d20roll.yaml or ~/.config/d20roll/config.yaml,
with D20ROLL_* environment variables taking precedence.`)
}
