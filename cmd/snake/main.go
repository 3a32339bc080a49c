// snake is the classic console snake game.
//
// Usage:
//
//	snake                    - Play in the Bubble Tea UI
//	snake --plain            - Play on a raw terminal without Bubble Tea
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible fruit placement
//	--log-level <level>  - Diagnostics on stderr: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed     int64
	flagPlain    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a walled board",
	Long: `Snake is the classic console game: eat the fruit, grow a tail and
stay clear of the walls and your own body.

Controls:
  W/A/S/D, arrows  - Steer
  X, Q, Ctrl+C     - Quit

Every fruit is worth 10 points. The final score is printed on exit.

Examples:
  snake
  snake --seed 42
  snake --plain --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSnake,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Draw with plain escape codes instead of the Bubble Tea UI")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}
