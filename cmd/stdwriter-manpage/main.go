package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/stdwriter/cmd/stdwriter"
	"github.com/arthur-debert/stdwriter/internal/version"
)

func main() {
	rootCmd := stdwriter.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "STDWRITER",
		Section: "1",
		Source:  "stdwriter " + version.Version,
		Manual:  "stdwriter manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
