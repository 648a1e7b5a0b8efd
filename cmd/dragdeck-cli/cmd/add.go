package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dragdeck/internal/application/commands"
)

var addNote string

var addCmd = &cobra.Command{
	Use:   "add <list-id> <title>",
	Short: "Add a card to the end of a list",
	Long: `Add a card to the end of a list. The card ID is derived from the
title unless --id is given.

Examples:
  dragdeck-cli add todo "Water the plants"
  dragdeck-cli add doing "Quarterly report" --note "draft due Friday"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		addCmd := commands.NewAddCardCommand(GetRepo(), args[0], args[1])
		addCmd.CardID = addCardID
		addCmd.Note = addNote

		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var addCardID string

func init() {
	addCmd.Flags().StringVar(&addCardID, "id", "", "explicit card ID (defaults to a slug of the title)")
	addCmd.Flags().StringVar(&addNote, "note", "", "optional note")
	rootCmd.AddCommand(addCmd)
}
