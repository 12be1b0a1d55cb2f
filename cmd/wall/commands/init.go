package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/wall"
)

// Init implements the 'wall init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("config", wall.ConfigFile, "Path of the file to write")
	columns := fs.Int("columns", 0, "Number of columns (default from built-in settings)")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
	}

	config := wall.DefaultConfig()
	if *columns > 0 {
		config.Wall.Columns = *columns
	}
	if err := wall.SaveConfig(*path, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", *path)
	return nil
}
