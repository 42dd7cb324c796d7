package main

import (
	"os"

	"github.com/vipcxj/hounsfield/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
