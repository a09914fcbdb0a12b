package main

import "github.com/wcvb13/claude-code-costs/cmd"

func main() {
	cmd.Execute()
}
