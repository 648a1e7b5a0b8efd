package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dragdeck/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <card-id> <list-id> <index>",
	Short: "Move a card to a slot in a list",
	Long: `Move a card to a zero-based slot in a list. An index past the end
of the list appends.

Examples:
  dragdeck-cli move taxes doing 0      # Move to the top of "doing"
  dragdeck-cli move taxes done 99      # Append to "done"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[2], err)
		}

		ctx := context.Background()
		moveCmd := commands.NewMoveCardCommand(GetRepo(), args[0], args[1], index)
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
