package main

import "github.com/notargets/elastic1d/cmd"

func main() {
	cmd.Execute()
}
