package main

import "dragdeck/cmd/dragdeck-cli/cmd"

func main() {
	cmd.Execute()
}
