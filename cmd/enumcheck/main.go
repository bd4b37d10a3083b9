package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/partite-ai/enumdef/decl"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <enums.yaml>...\n", os.Args[0])
		os.Exit(1)
	}

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	failed := 0
	for _, path := range os.Args[1:] {
		set, err := check(path)
		if err != nil {
			fail.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			failed++
			continue
		}
		pass.Printf("✓ %s: %d enums\n", path, set.Len())
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func check(path string) (*decl.Set, error) {
	doc, err := decl.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}
