package main

import (
	"os"

	"github.com/arthur-debert/stdwriter/cmd/stdwriter"
)

func main() {
	os.Exit(stdwriter.Execute(stdwriter.DefaultEnv(), os.Args[1:]))
}
