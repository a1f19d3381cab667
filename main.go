package main

import "github.com/iksnae/session-patterns/cmd"

func main() {
	cmd.Execute()
}
