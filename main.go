package main

import "autosigns/cmd"

func main() {
	cmd.Execute()
}
