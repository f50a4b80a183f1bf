package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Browse and watch recorded sessions",
	Long: `Open the session browser and watch past runs.

Replays are reconstructed deterministically from the recorded seed and
inputs, so the playback is exactly the run as it happened.

Examples:
  snake replay
  snake replay --db ./sessions.db`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --db is required for replay")
		os.Exit(1)
	}

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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runtimeCfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtimeCfg.ScreenW = w
		runtimeCfg.ScreenH = h
	}
	runtimeCfg.TickRate = cfg.TickRate

	if err := tui.RunReplayBrowser(store, opts, runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay browser: %v\n", err)
		os.Exit(1)
	}
}
