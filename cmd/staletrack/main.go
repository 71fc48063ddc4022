// cmd/staletrack/main.go
//
// Entry point for the staletrack TUI. Running `staletrack` from any
// directory creates a .staletrack/ folder there (or in STALETRACK_HOME
// when set) and launches the full-screen interface.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"staletrack/internal/config"
	"staletrack/internal/tui"
)

func main() {
	// Optional .env next to the binary's working directory; missing is
	// fine, it only exists to set STALETRACK_HOME and friends.
	_ = godotenv.Load()

	projectDir := os.Getenv(config.HomeEnvVar)
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
		projectDir = cwd
	}

	if err := config.InitAppDir(projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing %s directory: %v\n", config.AppDir, err)
		os.Exit(1)
	}

	app, err := tui.NewApp(projectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting staletrack: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
