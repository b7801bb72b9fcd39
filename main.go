package main

import (
	"github.com/gabrielvpina/utils/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
