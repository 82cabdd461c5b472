// Command helixdump prints a Helix source file's codon-by-codon listing.
package main

import (
	"fmt"
	"os"

	"github.com/helix-lang/helix/disasm"
	"github.com/helix-lang/helix/loader"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <program> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	inputFile := os.Args[1]
	var outputFile string
	if len(os.Args) == 3 {
		outputFile = os.Args[2]
	}

	f, err := os.Open(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	s, err := loader.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Loading error: %v\n", err)
		os.Exit(1)
	}

	listing := disasm.Listing(s)

	if outputFile == "" {
		fmt.Print(listing)
		return
	}
	if err := os.WriteFile(outputFile, []byte(listing), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Listing written to %s\n", outputFile)
}
