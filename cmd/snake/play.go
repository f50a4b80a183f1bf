package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start an interactive session in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  R            - Restart session
  Q/Ctrl+C     - Quit

Sessions are recorded to the database so they can be watched later with
'snake replay'. Pass --db "" to disable recording.

Examples:
  snake play
  snake play --fps 15
  snake play --config ./my-snake.yaml
  snake play --seed 42 --db ""`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Probe terminal size; bubbletea will correct it on the first resize
	runtimeCfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtimeCfg.ScreenW = w
		runtimeCfg.ScreenH = h
	}

	if minW, minH := opts.MinScreenSize(); runtimeCfg.ScreenW < minW || runtimeCfg.ScreenH < minH {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d but the configured playfield needs at least %dx%d\n",
			runtimeCfg.ScreenW, runtimeCfg.ScreenH, minW, minH)
		os.Exit(1)
	}

	runtimeCfg.Seed = flagSeed
	runtimeCfg.TickRate = cfg.TickRate
	if flagFPS > 0 {
		runtimeCfg.TickRate = flagFPS
	}

	// Open session storage for replay recording
	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
			// Continue without recording - game still works
			store = nil
		}
	}

	runErr := tui.Run(game.New(opts), store, runtimeCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
