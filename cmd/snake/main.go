// snake is a terminal snake game: eat apples, grow, wrap around the edges,
// and try not to bite yourself.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake replay             - Browse and watch recorded sessions
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Override tick rate (default: from config)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Sessions database path (default: ~/.tui-snake/sessions.db)
//	--config <path> - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: steer the
snake with the arrow keys, eat apples to grow, wrap around the screen
edges, and reset when you bite yourself.

Available commands:
  play     - Play in the current terminal
  replay   - Browse and watch recorded sessions
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --fps 15 --seed 42
  snake replay
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-snake/sessions.db", "Path to sessions database (empty disables recording)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
