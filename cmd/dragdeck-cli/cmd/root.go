package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dragdeck/internal/adapters/sqlite"
	"dragdeck/internal/config"
	"dragdeck/internal/ports"
)

var (
	boardPath string
	store     *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "dragdeck-cli",
	Short: "CLI for managing dragdeck boards",
	Long: `dragdeck-cli is a command-line interface for the dragdeck card board.

It provides commands to show the board and to add, move, and remove
cards, the same operations the TUI performs with the mouse.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(boardPath)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&boardPath, "board", "b", config.BoardPath(), "path to the board database")
}

// GetRepo returns the initialized board repository
func GetRepo() ports.BoardRepository {
	return store
}
