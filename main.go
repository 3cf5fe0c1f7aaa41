package main

import (
	"github.com/MannLabs/peptide-overlay/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
