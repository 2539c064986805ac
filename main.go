package main

import "storkeep-cli/cmd"

func main() {
	cmd.Execute()
}
