package main

import "github.com/rapidmidiex/fretui/cmd"

func main() {
	cmd.Execute()
}
