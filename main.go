package main

import "github.com/mycolab/genbank/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
