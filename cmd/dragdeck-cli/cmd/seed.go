package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dragdeck/internal/adapters/memory"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the demo board",
	Long: `Write the three-column demo board to the configured database.
Refuses to overwrite a non-empty board unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := GetRepo().Load()
		if err != nil {
			return err
		}
		if len(board.Lists) > 0 && !seedForce {
			return fmt.Errorf("board is not empty; use --force to overwrite")
		}

		if err := GetRepo().Save(memory.SampleBoard()); err != nil {
			return err
		}
		fmt.Println("Seeded demo board")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite a non-empty board")
	rootCmd.AddCommand(seedCmd)
}
