package main

import "github.com/navlink-io/navlink/cmd/navlink/command"

func main() {
	command.Execute()
}
