package main

import "github.com/thesisops/scrivener/cmd/scrivener/cmd"

func main() {
	cmd.Execute()
}
