package main

import "github.com/gocadlabs/govcad/cmd"

func main() {
	cmd.Execute()
}
