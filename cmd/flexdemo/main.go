package main

import (
	"fmt"
	"os"

	"github.com/flexkit/flexkit/cmd/flexdemo/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "layout":
		err = commands.Layout(args)
	case "version", "-v", "--version":
		fmt.Printf("flexdemo version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`flexdemo - flexkit layout CLI

Usage: flexdemo <command> [options]

Commands:
  layout <file.toml> <width> <height>   Load a node tree and print its computed layout
  version                               Print version information
  help                                  Show this help message

Examples:
  flexdemo layout testdata/row.toml 300 150`)
}
