package main

import "github.com/mpapenbr/f1tel/cmd"

func main() {
	cmd.Execute()
}
