// Command helixcheck validates a Helix source file without running it,
// reporting a parse error or the codon count and start index on success.
package main

import (
	"fmt"
	"os"

	"github.com/helix-lang/helix/loader"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <program>\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	s, err := loader.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %d codons", s.Len())
	for i := 0; i < s.Len(); i++ {
		c, _ := s.Get(i)
		if c.String() == "ATG" {
			fmt.Printf(", START at index %d (execution begins at %d)", i, i+1)
			break
		}
	}
	fmt.Println()
}
