package main

import (
	"cardbox/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
