package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dragdeck/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove <card-id>",
	Short: "Delete a card from the board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		removeCmd := commands.NewRemoveCardCommand(GetRepo(), args[0])
		result, err := removeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
