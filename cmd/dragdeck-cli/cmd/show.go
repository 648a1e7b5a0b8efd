package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dragdeck/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the board",
	Long: `Show every list on the board with its cards in order.

Example:
  dragdeck-cli show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		showCmd := commands.NewShowBoardCommand(GetRepo())
		board, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, l := range board.Lists {
			fmt.Printf("%s  %s\n", l.ID, l.Title)
			for i, c := range l.Cards {
				if c.Note != "" {
					fmt.Printf("  [%d] %s  %s (%s)\n", i, c.ID, c.Title, c.Note)
				} else {
					fmt.Printf("  [%d] %s  %s\n", i, c.ID, c.Title)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
