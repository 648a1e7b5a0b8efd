package config

import "os"

const DefaultBoardPath = "~/.local/share/dragdeck/board.db"

// BoardPath returns the board database path from the DRAGDECK_BOARD env
// var, falling back to DefaultBoardPath.
func BoardPath() string {
	if env := os.Getenv("DRAGDECK_BOARD"); env != "" {
		return env
	}
	return DefaultBoardPath
}
