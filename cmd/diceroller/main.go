package main

import "github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/cli"

func main() {
	cli.Execute()
}
