package main

import "parkingspot/cmd/cli/command"

func main() {
	command.Execute()
}
