package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/wall/cmd/wall/commands"
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
	case "init":
		err = commands.Init(args)
	case "view":
		err = commands.View(args)
	case "snapshot":
		err = commands.Snapshot(args)
	case "version", "-v", "--version":
		fmt.Printf("wall version %s\n", version)
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
	fmt.Println(`wall - masonry wall layout demo

Usage: wall <command> [options]

Commands:
  init            Write a wall.toml with the default settings
  view            Show a scrollable demo wall in the terminal
  snapshot        Lay out the demo wall headless and save a PNG
  version         Print version information
  help            Show this help message

Examples:
  wall init --columns 3                      Create wall.toml with three columns
  wall view --items 500                      Browse 500 demo tiles
  wall view --save-state state.toml          Keep the position for next time
  wall snapshot --scroll 120 --out wall.png  Render the wall scrolled by 120
  wall snapshot --state state.toml           Render a saved position

Configuration:
  Settings are read from wall.toml in the current directory or any parent,
  or from the file given with --config.`)
}
