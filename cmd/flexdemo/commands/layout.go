package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flexkit/flexkit"
)

// Layout loads a TOML node-tree document and prints its computed layout
// once CalculateLayout has run, one line per node in pre-order, indented
// by depth.
func Layout(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: flexdemo layout <file.toml> <width> <height>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	width, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[1], err)
	}
	height, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid height %q: %w", args[2], err)
	}

	root, err := flexkit.LoadTOMLTree(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	root.CalculateLayout(width, height)
	printNode(root, 0)
	return nil
}

func printNode(n *flexkit.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s(%g, %g) %gx%g\n", indent, n.GetComputedLeft(), n.GetComputedTop(), n.GetComputedWidth(), n.GetComputedHeight())
	for i := 0; i < n.GetChildCount(); i++ {
		printNode(n.GetChild(i), depth+1)
	}
}
