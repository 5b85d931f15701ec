package main

import "github.com/pianoforge/midipiece/cmd"

func main() {
	cmd.Execute()
}
